package domain

// EventType classifies a progress record from the code-generation agent.
type EventType string

const (
	EventStart     EventType = "start"
	EventInfo      EventType = "info"
	EventOutput    EventType = "output"
	EventComplete  EventType = "complete"
	EventError     EventType = "error"
	EventCancelled EventType = "cancelled"
)

// ProgressEvent is one record of the agent's progress stream.
type ProgressEvent struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
}

// Outcome is the terminal state of a code-generation run.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	// OutcomeEnded means the stream closed without a complete record.
	OutcomeEnded     Outcome = "ended"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// EventSink receives progress events in arrival order.
type EventSink func(ProgressEvent)

// TransformRequest is the request contract of the code-generation agent.
type TransformRequest struct {
	KiroContent string `json:"kiro_content"`
	WorkingDir  string `json:"working_dir,omitempty"`
}
