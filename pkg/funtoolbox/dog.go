package funtoolbox

import (
	"context"
	"encoding/json"

	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

const defaultDogURL = "https://dog.ceo/api/breeds/image/random"

type dogResult struct {
	OK    bool   `json:"ok"`
	Image string `json:"image"`
}

func (f *FunTools) dogTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "random_dog",
		Description: "Return a random dog image URL.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
		Handler:     f.randomDog,
	}
}

func (f *FunTools) randomDog(ctx context.Context, _ json.RawMessage) (string, error) {
	var resp struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := f.getJSON(ctx, f.dogURL, nil, &resp); err != nil {
		return "", err
	}

	return marshalResult(dogResult{OK: true, Image: resp.Message})
}
