package sse

// EventType names an SSE event in the assistant run stream.
type EventType string

const (
	// EventStatus marks a lifecycle step of the run.
	EventStatus EventType = "status"

	// EventToolCall is emitted before each tool execution.
	EventToolCall EventType = "tool_call"

	// EventMessage carries the assistant's final reply text.
	EventMessage EventType = "message"

	// EventDone is the terminal success event.
	EventDone EventType = "done"

	// EventError is the terminal failure event.
	EventError EventType = "error"
)

// Lifecycle steps reported through status events, in emission order.
const (
	StepInit        = "init"
	StepThreadReady = "thread_ready"
	StepRunStart    = "run_start"
	StepTools       = "tools"
)

// StatusEvent reports a run lifecycle step. ThreadID is set only for
// thread_ready, Count only for tools.
type StatusEvent struct {
	Step     string `json:"step"`
	ThreadID string `json:"threadId,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// NewInitStatus is emitted as soon as the stream opens.
func NewInitStatus() StatusEvent {
	return StatusEvent{Step: StepInit}
}

// NewThreadReadyStatus reports the thread the run is bound to.
func NewThreadReadyStatus(threadID string) StatusEvent {
	return StatusEvent{Step: StepThreadReady, ThreadID: threadID}
}

// NewRunStartStatus is emitted once the assistant run has been created.
func NewRunStartStatus() StatusEvent {
	return StatusEvent{Step: StepRunStart}
}

// NewToolsStatus reports how many tool calls the assistant requested in
// the current batch.
func NewToolsStatus(count int) StatusEvent {
	return StatusEvent{Step: StepTools, Count: count}
}

// ToolCallEvent is emitted before each tool execution with the parsed
// arguments. Args is never nil; unparseable arguments become an empty map.
type ToolCallEvent struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// NewToolCallEvent creates a tool call event.
func NewToolCallEvent(name string, args map[string]any) ToolCallEvent {
	if args == nil {
		args = map[string]any{}
	}
	return ToolCallEvent{Name: name, Args: args}
}

// MessageEvent carries the assistant's reply text.
type MessageEvent struct {
	Text string `json:"text"`
}

// NewMessageEvent creates a message event.
func NewMessageEvent(text string) MessageEvent {
	return MessageEvent{Text: text}
}

// DoneEvent is the terminal success event.
type DoneEvent struct {
	OK bool `json:"ok"`
}

// NewDoneEvent creates a done event.
func NewDoneEvent() DoneEvent {
	return DoneEvent{OK: true}
}

// ErrorEvent is the terminal failure event. Status carries the assistant
// run's terminal status when the failure came from the run itself.
type ErrorEvent struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// NewErrorEvent creates an error event.
func NewErrorEvent(status, message string) ErrorEvent {
	return ErrorEvent{Status: status, Message: message}
}
