package feed

import "github.com/acertaplus/solicitation-api/internal/domain"

// EventType identifies an outbound UI event on a session stream.
type EventType string

const (
	// EventSnapshot carries the initial backlog after subscribing.
	EventSnapshot EventType = "snapshot"

	// EventFeedUpdated carries the full reconciled feed after a change.
	EventFeedUpdated EventType = "feed_updated"

	// EventRequestPresented asks the client to open the confirmation modal
	// for one request.
	EventRequestPresented EventType = "request_presented"

	// EventChime asks the client to play the notification sound. Emitted only
	// after an operator interaction has been recorded.
	EventChime EventType = "chime"

	// EventFeedError signals a degraded feed (subscription or confirm
	// failure). The client renders it; it never tears the stream down.
	EventFeedError EventType = "feed_error"
)

// Event is one message on a session's outbound stream.
type Event struct {
	Type     EventType               `json:"type"`
	Requests []domain.ServiceRequest `json:"requests,omitempty"`
	Request  *domain.ServiceRequest  `json:"request,omitempty"`
	Message  string                  `json:"message,omitempty"`
}
