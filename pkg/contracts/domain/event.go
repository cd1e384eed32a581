package domain

// EventType classifies the direction of an analyst rating change.
type EventType string

const (
	EventTypeUpgrade   EventType = "upgrade"
	EventTypeDowngrade EventType = "downgrade"
)

// Valid reports whether t is one of the closed set of event types.
func (t EventType) Valid() bool {
	return t == EventTypeUpgrade || t == EventTypeDowngrade
}

// Event represents a deduplicated, classified analyst rating change for one
// (event date, firm) pair. Events are immutable once built; IDs are dense and
// start at 1 within a single build.
type Event struct {
	ID        int       `json:"event_id"`
	Firm      string    `json:"firm"`
	EventDate string    `json:"event_date"`
	Type      EventType `json:"event_type"`
}
