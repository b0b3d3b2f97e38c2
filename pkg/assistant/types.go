// Package assistant wraps the external assistant provider behind a small
// typed interface. Callers never see provider SDK types, so the SDK can be
// swapped or mocked without touching the run driver.
package assistant

import "context"

// Status is the lifecycle status of an assistant run.
type Status string

const (
	StatusQueued         Status = "queued"
	StatusInProgress     Status = "in_progress"
	StatusRequiresAction Status = "requires_action"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusCancelling     Status = "cancelling"
	StatusCancelled      Status = "cancelled"
	StatusExpired        Status = "expired"
)

// Terminal reports whether the run has reached a final state.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// ToolCall is a tool invocation requested by the assistant. Arguments is the
// raw JSON string as the provider sent it; parsing is the caller's concern.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolOutput is the serialized result for one tool call.
type ToolOutput struct {
	ToolCallID string
	Output     string
}

// Run is a snapshot of an assistant run.
type Run struct {
	ID       string
	ThreadID string
	Status   Status

	// ToolCalls is populated when Status is requires_action.
	ToolCalls []ToolCall

	// LastError carries the provider's error message for failed runs.
	LastError string
}

// Provider is the surface of the assistant service the run driver needs.
type Provider interface {
	// CreateThread creates a new conversation thread and returns its ID.
	CreateThread(ctx context.Context) (string, error)

	// AddUserMessage appends a user message to the thread.
	AddUserMessage(ctx context.Context, threadID, text string) error

	// CreateRun starts a run of the configured assistant on the thread.
	CreateRun(ctx context.Context, threadID string) (Run, error)

	// GetRun fetches the current state of a run.
	GetRun(ctx context.Context, threadID, runID string) (Run, error)

	// SubmitToolOutputs submits the batch of tool results for a
	// requires_action run and returns the updated run.
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) (Run, error)

	// LatestAssistantText returns the text of the newest assistant message
	// produced by the run. It returns "" when the message has no text
	// content.
	LatestAssistantText(ctx context.Context, threadID, runID string) (string, error)
}
