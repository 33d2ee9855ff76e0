// Package mirror contains pure business logic for mapping button samples to
// display and event decisions. This package has NO external dependencies
// (no GPIO, MQTT, OS, or time.Sleep). Time is always injectable via
// time.Time parameters.
package mirror

import "time"

// PressedGlyph is the glyph rendered while the button is held.
const PressedGlyph = 'A'

// State represents the logical state of the button.
type State string

const (
	StatePressed  State = "PRESSED"
	StateReleased State = "RELEASED"
)

// EventType represents a state transition event.
type EventType string

const (
	EventPressed  EventType = "PRESSED"
	EventReleased EventType = "RELEASED"
)

// Event represents a state transition to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	State     State
}

// Input represents a single sample of the effective pressed state
// (post-fallback: a failed read has already collapsed to released).
type Input struct {
	Pressed bool
	Time    time.Time
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	Presses  int
	Releases int
}

// HeartbeatData contains information for a heartbeat event.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Counts    EventCounts
}
