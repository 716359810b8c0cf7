package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/weekender/pkg/chats/chat"
	"github.com/germanamz/weekender/pkg/chats/message"
	"github.com/germanamz/weekender/pkg/chats/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatRequest mirrors the fields of the daemon's chat request we assert on.
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Stream  *bool          `json:"stream"`
	Options map[string]any `json:"options"`
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	a, err := New(ts.URL, "mistral:7b")
	require.NoError(t, err)

	return a
}

func TestNewHostFallback(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")

	a, err := New("", "mistral:7b")
	require.NoError(t, err)
	assert.NotNil(t, a.client)
}

func TestNewHostFromEnv(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://ollama.local:11434")

	_, err := New("", "mistral:7b")
	require.NoError(t, err)
}

func TestComplete(t *testing.T) {
	var got chatRequest

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"mistral:7b","created_at":"2025-01-01T00:00:00Z","message":{"role":"assistant","content":"{\"action\":\"final\",\"answer\":\"hi\"}"},"done":true}`))
	})

	c := chat.New(
		message.New(role.System, "rules"),
		message.New(role.User, "hello"),
	)

	reply, err := a.Complete(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, `{"action":"final","answer":"hi"}`, reply)

	assert.Equal(t, "mistral:7b", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "rules", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)

	require.NotNil(t, got.Stream)
	assert.False(t, *got.Stream)
	assert.InDelta(t, 0.2, got.Options["temperature"], 1e-9)
}

func TestCompleteTrimsReply(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"m","created_at":"2025-01-01T00:00:00Z","message":{"role":"assistant","content":"  padded answer \n"},"done":true}`))
	})

	reply, err := a.Complete(context.Background(), chat.New(message.New(role.User, "hi")))
	require.NoError(t, err)
	assert.Equal(t, "padded answer", reply)
}

func TestCompleteServerError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	})

	_, err := a.Complete(context.Background(), chat.New(message.New(role.User, "hi")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama: chat:")
}
