// Package decision parses the model's raw text output into the agent's
// two-branch decision type: call a tool, or give a final answer.
//
// The model is instructed to reply with exactly one of two JSON shapes:
//
//	{"action":"<tool_name>","args":{...}}
//	{"action":"final","answer":"<plain text>"}
//
// Output that does not parse as a JSON object is treated as a final answer
// verbatim. That is a deliberate lenient-fallback policy, not an error path:
// malformed model output degrades to "just answer", never to a failure.
package decision

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ActionFinal is the sentinel action value marking a final answer.
const ActionFinal = "final"

// Decision is the model's choice between invoking a tool and answering.
type Decision struct {
	// Action is the tool name to invoke, or ActionFinal.
	Action string
	// Args holds the raw JSON arguments for a tool decision.
	Args json.RawMessage
	// Answer holds the plain-text answer for a final decision.
	Answer string
	// Fallback is true when the raw output did not parse as a JSON object
	// and the whole text was taken as the answer.
	Fallback bool
}

// IsFinal reports whether the decision is a final answer.
func (d Decision) IsFinal() bool {
	return d.Action == ActionFinal
}

// Final creates a final-answer decision with the given text.
func Final(text string) Decision {
	return Decision{Action: ActionFinal, Answer: text}
}

// wire is the JSON shape the model is instructed to produce.
type wire struct {
	Action string          `json:"action"`
	Args   json.RawMessage `json:"args"`
	Answer json.RawMessage `json:"answer"`
}

// Parse interprets raw model output. A JSON object with action "final"
// becomes a final answer; a JSON object with any other action (including a
// missing one) becomes a tool decision; anything else becomes a fallback
// final answer equal to the trimmed raw text.
func Parse(raw string) Decision {
	trimmed := strings.TrimSpace(raw)

	var w wire
	if err := json.Unmarshal([]byte(trimmed), &w); err != nil {
		return Decision{Action: ActionFinal, Answer: trimmed, Fallback: true}
	}

	if w.Action == ActionFinal {
		return Final(ToPlainText(w.Answer))
	}

	return Decision{Action: strings.TrimSpace(w.Action), Args: w.Args}
}

// ToPlainText coerces a raw JSON answer value to plain text. Per the system
// rules only strings should arrive here; any other value is kept as its
// compact JSON text so the caller always gets something printable.
func ToPlainText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return strings.TrimSpace(buf.String())
}
