package funtoolbox

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

const defaultJokeURL = "https://v2.jokeapi.dev/joke/Any"

type jokeResult struct {
	OK   bool   `json:"ok"`
	Joke string `json:"joke"`
}

func (f *FunTools) jokeTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "random_joke",
		Description: "Return a safe, single-line joke.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
		Handler:     f.randomJoke,
	}
}

func (f *FunTools) randomJoke(ctx context.Context, _ json.RawMessage) (string, error) {
	params := url.Values{}
	params.Set("type", "single")
	params.Set("safe-mode", "true")

	var resp struct {
		Joke string `json:"joke"`
	}
	if err := f.getJSON(ctx, f.jokeURL, params, &resp); err != nil {
		return "", err
	}

	joke := resp.Joke
	if joke == "" {
		joke = "No joke found"
	}

	return marshalResult(jokeResult{OK: true, Joke: joke})
}
