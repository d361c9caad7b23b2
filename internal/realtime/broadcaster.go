package realtime

// Booking lifecycle events pushed to every connected client. Broadcast,
// not targeted: unrelated users receive all events.
const (
	EventNewBooking    = "newBooking"
	EventUpdateBooking = "updateBooking"
	EventDeleteBooking = "deleteBooking"
)

// Message is the wire envelope for a realtime event.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Broadcaster publishes booking lifecycle events. Publish must never
// block or fail the caller; persistence never waits on delivery.
type Broadcaster interface {
	Publish(event string, payload any)
}

// Noop is the injected stand-in for test and offline contexts.
type Noop struct{}

func (Noop) Publish(string, any) {}
