package funtoolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

const defaultBooksURL = "https://openlibrary.org/search.json"

const defaultBookLimit = 5

type booksArgs struct {
	Topic string `json:"topic"`
	Limit int    `json:"limit"`
}

type bookPick struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year,omitempty"`
	Work   string `json:"work,omitempty"`
}

type booksResult struct {
	OK      bool       `json:"ok"`
	Topic   string     `json:"topic"`
	Results []bookPick `json:"results"`
}

func (f *FunTools) booksTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "book_recs",
		Description: "Simple book suggestions for a topic via Open Library search.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "Topic to search books for"},
				"limit": {"type": "integer", "description": "Maximum number of suggestions", "default": 5}
			},
			"required": ["topic"]
		}`),
		Handler: f.bookRecs,
	}
}

func (f *FunTools) bookRecs(ctx context.Context, input json.RawMessage) (string, error) {
	var args booksArgs
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("funtoolbox: book_recs arguments: %w", err)
		}
	}
	if args.Limit <= 0 {
		args.Limit = defaultBookLimit
	}

	params := url.Values{}
	params.Set("q", args.Topic)
	params.Set("limit", strconv.Itoa(args.Limit))

	var resp struct {
		Docs []struct {
			Title            string   `json:"title"`
			AuthorName       []string `json:"author_name"`
			FirstPublishYear int      `json:"first_publish_year"`
			Key              string   `json:"key"`
		} `json:"docs"`
	}
	if err := f.getJSON(ctx, f.booksURL, params, &resp); err != nil {
		return "", err
	}

	picks := make([]bookPick, 0, len(resp.Docs))
	for _, d := range resp.Docs {
		author := "Unknown"
		if len(d.AuthorName) > 0 {
			author = d.AuthorName[0]
		}
		picks = append(picks, bookPick{
			Title:  d.Title,
			Author: author,
			Year:   d.FirstPublishYear,
			Work:   d.Key,
		})
	}

	return marshalResult(booksResult{OK: true, Topic: args.Topic, Results: picks})
}
