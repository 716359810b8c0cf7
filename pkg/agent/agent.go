// Package agent implements the bounded tool-calling control loop: it relays
// user text to the model, executes the tool calls the model requests, folds
// summarized results back into the conversation, and surfaces the final
// answer. Every failure mode ends as a conversational message; a turn never
// crashes the session.
package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/germanamz/weekender/pkg/chats/chat"
	"github.com/germanamz/weekender/pkg/chats/message"
	"github.com/germanamz/weekender/pkg/chats/role"
	"github.com/germanamz/weekender/pkg/decision"
	"github.com/germanamz/weekender/pkg/providers/provider"
	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

// DefaultMaxSteps bounds decision evaluations within a single user turn.
const DefaultMaxSteps = 8

// Canned turn outcomes. Policy: a tool failure continues the loop so the
// model can adapt, an unknown tool name aborts the turn, and exhausting the
// step budget asks the user to rephrase.
const (
	CouldNotFinishMessage = "I tried several steps but couldn't finish your request. Could you rephrase?"

	apologyPrefix   = "Sorry, I had trouble reaching my brain: "
	toolResultLabel = "[Tool Result] "
	toolErrorLabel  = "[Tool Error] "
)

// SystemPrompt constrains the model to the one-tool-at-a-time JSON decision
// protocol the decision package parses.
const SystemPrompt = `You are a cheerful weekend helper.

You have access to external tools.
You MUST use tools to get real data.
You are NOT allowed to invent tool results.

Rules:
1. If information is missing, call the correct tool.
2. Call ONLY ONE tool at a time.
3. After a tool call, wait for the tool result.
4. When all required data is collected, write a FRIENDLY, HUMAN, PLAIN-TEXT response.
5. DO NOT return JSON, lists, or action objects in the final answer.

Tool call format (ONLY this):
{"action":"tool_name","args":{...}}

Final answer format (ONLY this):
{"action":"final","answer":"<plain English text>"}`

// Agent owns a conversation and drives it through a Completer and a ToolBox.
// Agent is not safe for concurrent use; turns are strictly sequential.
type Agent struct {
	Completer provider.Completer
	Tools     *toolbox.ToolBox
	Chat      *chat.Chat
	// MaxSteps caps decision evaluations per turn; zero means DefaultMaxSteps.
	MaxSteps int
	// Logger receives decision and tool-call events. Nil disables logging.
	Logger *slog.Logger
}

// New creates an Agent over the given completer, tool set, and conversation.
func New(completer provider.Completer, tools *toolbox.ToolBox, c *chat.Chat) *Agent {
	return &Agent{
		Completer: completer,
		Tools:     tools,
		Chat:      c,
	}
}

// Turn processes one user input to completion and returns the text to show
// the user. It never returns an error: model failures, unknown tools, tool
// failures, and step exhaustion all degrade to conversational messages per
// the loop policy.
func (a *Agent) Turn(ctx context.Context, input string) string {
	a.Chat.Append(message.New(role.User, input))

	for step := 0; step < a.maxSteps(); step++ {
		d := a.decide(ctx)
		a.log().DebugContext(ctx, "decision",
			"step", step,
			"action", d.Action,
			"fallback", d.Fallback,
		)

		if d.IsFinal() {
			a.Chat.Append(message.New(role.Assistant, d.Answer))
			return d.Answer
		}

		if _, ok := a.Tools.Get(d.Action); !ok {
			msg := fmt.Sprintf("Unknown tool: %s", d.Action)
			a.Chat.Append(message.New(role.Assistant, msg))
			return msg
		}

		payload, err := a.Tools.Call(ctx, d.Action, d.Args)
		if err != nil {
			a.log().WarnContext(ctx, "tool call failed", "tool", d.Action, "error", err)
			errMsg := fmt.Sprintf("Tool '%s' failed: %v", d.Action, err)
			a.Chat.Append(message.New(role.User, toolErrorLabel+errMsg))
			continue
		}

		summary := SummarizeToolResult(d.Action, payload)
		a.log().InfoContext(ctx, "tool call succeeded", "tool", d.Action, "summary", summary)
		a.Chat.Append(message.New(role.User, toolResultLabel+summary))
	}

	a.Chat.Append(message.New(role.Assistant, CouldNotFinishMessage))
	return CouldNotFinishMessage
}

// decide consults the model and parses its reply. A consultation failure
// degrades to a fixed apologetic final answer rather than an error.
func (a *Agent) decide(ctx context.Context) decision.Decision {
	raw, err := a.Completer.Complete(ctx, a.Chat)
	if err != nil {
		a.log().WarnContext(ctx, "model consultation failed", "error", err)
		return decision.Final(apologyPrefix + err.Error())
	}

	return decision.Parse(raw)
}

func (a *Agent) maxSteps() int {
	if a.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return a.MaxSteps
}

func (a *Agent) log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.DiscardHandler)
