package mirror

import "time"

// Mirror tracks the button state across samples and detects transitions.
// There is no debounce: the poll rate is the only smoothing, and a change of
// state emits on the very next sample.
type Mirror struct {
	state         State
	baselined     bool
	startTime     time.Time
	eventCounts   EventCounts
	lastHeartbeat time.Time
}

// NewMirror creates a Mirror. The startTime is used for calculating uptime
// in heartbeat events.
func NewMirror(startTime time.Time) *Mirror {
	return &Mirror{
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// Process takes a new sample and returns any events that should be emitted.
// The first sample establishes the baseline and never emits.
func (m *Mirror) Process(input Input) []Event {
	newState := boolToState(input.Pressed)

	if !m.baselined {
		m.state = newState
		m.baselined = true
		return nil
	}

	if newState == m.state {
		return nil
	}

	m.state = newState

	event := Event{
		Timestamp: input.Time,
		Type:      eventTypeFor(newState),
		State:     newState,
	}
	switch event.Type {
	case EventPressed:
		m.eventCounts.Presses++
	case EventReleased:
		m.eventCounts.Releases++
	}

	return []Event{event}
}

// Render maps a sample's effective pressed state to the display decision.
// Stateless and idempotent: the caller applies it every poll.
func Render(pressed bool) (glyph rune, show bool) {
	if pressed {
		return PressedGlyph, true
	}
	return 0, false
}

func boolToState(pressed bool) State {
	if pressed {
		return StatePressed
	}
	return StateReleased
}

func eventTypeFor(s State) EventType {
	if s == StatePressed {
		return EventPressed
	}
	return EventReleased
}

// IsBaselined returns whether the mirror has seen its first sample.
func (m *Mirror) IsBaselined() bool {
	return m.baselined
}

// CurrentState returns the current button state.
func (m *Mirror) CurrentState() State {
	return m.state
}

// EventCountsSnapshot returns a copy of the event counts.
func (m *Mirror) EventCountsSnapshot() EventCounts {
	return m.eventCounts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since
// the last heartbeat (or startup). Returns nil if not yet baselined, if the
// interval has not elapsed, or if interval is <= 0 (disabled).
func (m *Mirror) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}

	if !m.baselined {
		return nil
	}

	if now.Sub(m.lastHeartbeat) < interval {
		return nil
	}

	m.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(m.startTime),
		Counts:    m.eventCounts,
	}
}
