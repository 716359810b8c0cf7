package agent

import (
	"encoding/json"
	"fmt"
	"html"
)

// Tool names served by the funtools host. The summarizer templates are keyed
// on them; tools outside this set get the generic fallback line.
const (
	weatherToolName = "get_weather"
	booksToolName   = "book_recs"
	jokeToolName    = "random_joke"
	dogToolName     = "random_dog"
	triviaToolName  = "trivia"
)

const dogSummary = "I fetched a cute dog picture for you! 🐶"

// SummarizeToolResult converts a raw tool payload into one short
// natural-language sentence for the conversation history. Raw payloads are
// never fed back to the model in full; the compact summary keeps its context
// small and nudges it toward a final answer.
func SummarizeToolResult(toolName, payload string) string {
	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return fmt.Sprintf("The '%s' tool returned: %s", toolName, payload)
	}

	switch toolName {
	case weatherToolName:
		desc := stringField(data, "description", "unknown conditions")
		temp := "??"
		if v, ok := data["temperature"].(float64); ok {
			temp = formatNumber(v)
		}
		return fmt.Sprintf("The current weather is %s with a temperature of %s°C.", desc, temp)

	case booksToolName:
		title, author := firstBook(data)
		return fmt.Sprintf("I found a book: '%s' by %s.", title, author)

	case jokeToolName:
		joke := stringField(data, "joke", "Why don't skeletons fight each other? They don't have the guts!")
		return "Here's a joke: " + joke

	case dogToolName:
		return dogSummary

	case triviaToolName:
		question := stringField(data, "question", "What is the meaning of life?")
		return "Trivia question: " + html.UnescapeString(question)

	default:
		compact, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("Tool '%s' returned: %s", toolName, payload)
		}
		return fmt.Sprintf("Tool '%s' returned: %s", toolName, compact)
	}
}

// firstBook picks the title and author of the first result in a book_recs
// payload, with friendly placeholders when the search came back empty.
func firstBook(data map[string]any) (title, author string) {
	title, author = "a great book", "an author"

	results, ok := data["results"].([]any)
	if !ok || len(results) == 0 {
		return title, author
	}

	first, ok := results[0].(map[string]any)
	if !ok {
		return title, author
	}

	title = stringField(first, "title", title)
	author = stringField(first, "author", author)
	return title, author
}

func stringField(data map[string]any, key, fallback string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// formatNumber renders a JSON number the way it was written, without a
// trailing ".0" for whole values.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
