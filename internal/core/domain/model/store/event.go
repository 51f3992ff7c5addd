package store

// EventType distinguishes the store change events propagated to the legacy system.
type EventType string

// Store change event types.
const (
	EventCreated EventType = "CREATED"
	EventUpdated EventType = "UPDATED"
)

// Event describes a committed change to a store. Events are published to the
// legacy store manager after the owning transaction succeeds; delivery is
// best-effort and at-most-once, and publish failures never affect the
// outcome of the operation that produced the event.
type Event struct {
	store     *Store
	eventType EventType
}

// NewEvent creates a store change event.
func NewEvent(store *Store, eventType EventType) Event {
	return Event{store: store, eventType: eventType}
}

// Store returns the store the event refers to.
func (e Event) Store() *Store {
	return e.store
}

// Type returns the kind of change that occurred.
func (e Event) Type() EventType {
	return e.eventType
}
