package internal

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sweeney/button-display/internal/button"
	"github.com/sweeney/button-display/internal/display"
	"github.com/sweeney/button-display/internal/mirror"
	"github.com/sweeney/button-display/internal/mqtt"
)

// step drives one poll iteration the way the daemon's run loop does:
// read through the chain, process the sample, publish transitions, render.
func step(t *testing.T, reader button.Reader, m *mirror.Mirror, disp display.Display, pub mqtt.Publisher, now time.Time) {
	t.Helper()

	pressed, err := reader.Read()
	if err != nil {
		pressed = false
	}

	for _, event := range m.Process(mirror.Input{Pressed: pressed, Time: now}) {
		if err := pub.Publish(event); err != nil {
			t.Fatalf("publish error: %v", err)
		}
	}

	if glyph, show := mirror.Render(pressed); show {
		if err := disp.Show(glyph); err != nil {
			t.Fatalf("display error: %v", err)
		}
	} else {
		if err := disp.Clear(); err != nil {
			t.Fatalf("display error: %v", err)
		}
	}
}

// TestIntegrationAccessorFallback walks the button through every reachable
// input condition: primary answering, primary failing with a live fallback,
// and both paths failing.
func TestIntegrationAccessorFallback(t *testing.T) {
	raiseErr := errors.New("accessor raised")

	// Primary: true, false, then raising forever.
	primary := button.NewFakeReader([]button.Sample{
		{Pressed: true},
		{Pressed: false},
		{Err: raiseErr},
		{Err: raiseErr},
	})
	// Fallback: consulted only while the primary raises — answers true
	// once, then raises too.
	fallback := button.NewFakeReader([]button.Sample{
		{Pressed: true},
		{Err: raiseErr},
	})
	reader := button.NewChain(primary, fallback)

	disp := display.NewFakeDisplay()
	pub := mqtt.NewFakePublisher()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := mirror.NewMirror(start)

	type want struct {
		showing rune
		state   mirror.State
	}
	wants := []want{
		{'A', mirror.StatePressed},   // primary: pressed
		{0, mirror.StateReleased},    // primary: released
		{'A', mirror.StatePressed},   // primary raises, fallback: pressed
		{0, mirror.StateReleased},    // both raise: fail-safe released
	}

	for i, w := range wants {
		step(t, reader, m, disp, pub, start.Add(time.Duration(i)*100*time.Millisecond))
		if disp.Showing != w.showing {
			t.Errorf("tick %d: display showing %q, want %q", i, disp.Showing, w.showing)
		}
		if m.CurrentState() != w.state {
			t.Errorf("tick %d: state %s, want %s", i, m.CurrentState(), w.state)
		}
	}

	// The first tick only baselines; the three following flips each emit.
	wantEvents := []mirror.EventType{mirror.EventReleased, mirror.EventPressed, mirror.EventReleased}
	if len(pub.Events) != len(wantEvents) {
		t.Fatalf("expected %d events, got %d", len(wantEvents), len(pub.Events))
	}
	for i, wantType := range wantEvents {
		if pub.Events[i].Type != wantType {
			t.Errorf("event %d: expected %s, got %s", i, wantType, pub.Events[i].Type)
		}
	}

	counts := m.EventCountsSnapshot()
	if counts.Presses != 1 || counts.Releases != 2 {
		t.Errorf("counts: got %+v, want 1 press, 2 releases", counts)
	}

	if fallback.Reads != 2 {
		t.Errorf("fallback consulted %d times, want 2", fallback.Reads)
	}
}

// TestIntegrationBothAccessorsDead asserts the display can never show the
// glyph while every access path raises.
func TestIntegrationBothAccessorsDead(t *testing.T) {
	primary := button.NewFakeReader(nil)
	primary.ReadError = errors.New("dead")
	fallback := button.NewFakeReader(nil)
	fallback.ReadError = errors.New("dead")
	reader := button.NewChain(primary, fallback)

	disp := display.NewFakeDisplay()
	pub := mqtt.NewFakePublisher()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := mirror.NewMirror(start)

	for i := 0; i < 10; i++ {
		step(t, reader, m, disp, pub, start.Add(time.Duration(i)*100*time.Millisecond))
	}

	if len(disp.Glyphs) != 0 {
		t.Errorf("expected no Show calls, got %d", len(disp.Glyphs))
	}
	if disp.Clears != 10 {
		t.Errorf("expected 10 Clear calls, got %d", disp.Clears)
	}
	if len(pub.Events) != 0 {
		t.Errorf("expected no events, got %d", len(pub.Events))
	}
}

// TestIntegrationEventPayloads checks the wire format of a published press.
func TestIntegrationEventPayloads(t *testing.T) {
	reader := button.NewChain(button.NewFakeReader([]button.Sample{
		{Pressed: false},
		{Pressed: true},
	}))

	disp := display.NewFakeDisplay()
	pub := mqtt.NewFakePublisher()
	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	m := mirror.NewMirror(start)

	step(t, reader, m, disp, pub, start)
	step(t, reader, m, disp, pub, start.Add(100*time.Millisecond))

	if len(pub.Payloads) != 1 {
		t.Fatalf("expected 1 payload, got %d", len(pub.Payloads))
	}

	var parsed mqtt.Payload
	if err := json.Unmarshal(pub.Payloads[0], &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if parsed.Button.Event != "PRESSED" {
		t.Errorf("event: got %q, want PRESSED", parsed.Button.Event)
	}
	if parsed.Button.State != "PRESSED" {
		t.Errorf("state: got %q, want PRESSED", parsed.Button.State)
	}
	if parsed.Button.Timestamp != "2026-03-14T09:26:53Z" {
		t.Errorf("timestamp: got %q", parsed.Button.Timestamp)
	}
}
