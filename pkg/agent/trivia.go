package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/germanamz/weekender/pkg/chats/message"
	"github.com/germanamz/weekender/pkg/chats/role"
)

// IsTriviaRequest reports whether the input should take the trivia fast
// path instead of the general decision loop.
func IsTriviaRequest(input string) bool {
	return strings.Contains(strings.ToLower(input), "trivia")
}

// Quiz is one multiple-choice trivia question ready for display.
type Quiz struct {
	Question string
	Choices  []string
}

// TriviaTurn is a parallel entry point that bypasses the decision loop: it
// calls the trivia tool directly and returns the quiz for display. Its
// history side effects differ from Turn's on purpose — on success only the
// user-role tool-result summary is appended, never an assistant-role final.
// On failure an assistant-role error message is appended and returned.
func (a *Agent) TriviaTurn(ctx context.Context, input string) (Quiz, error) {
	a.Chat.Append(message.New(role.User, input))

	payload, err := a.Tools.Call(ctx, triviaToolName, nil)
	if err != nil {
		return Quiz{}, a.triviaFailed(err)
	}

	var data struct {
		Question         string   `json:"question"`
		Choices          []string `json:"choices"`
		IncorrectAnswers []string `json:"incorrect_answers"`
		CorrectAnswer    string   `json:"correct_answer"`
	}
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return Quiz{}, a.triviaFailed(err)
	}

	choices := data.Choices
	if len(choices) == 0 {
		choices = append(choices, data.IncorrectAnswers...)
		if data.CorrectAnswer != "" {
			choices = append(choices, data.CorrectAnswer)
		}
	}

	quiz := Quiz{
		Question: data.Question,
		Choices:  dedupe(choices),
	}

	a.Chat.Append(message.New(role.User, toolResultLabel+SummarizeToolResult(triviaToolName, payload)))

	return quiz, nil
}

// triviaFailed records the failure as an assistant turn so the conversation
// keeps continuity, and returns the same text as the error.
func (a *Agent) triviaFailed(err error) error {
	msg := fmt.Sprintf("Oops! Trivia failed: %v", err)
	a.Chat.Append(message.New(role.Assistant, msg))
	return errors.New(msg)
}

// dedupe removes duplicate strings preserving first-seen order. The tool
// host already dedupes choices; this guards against payloads it didn't build.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
