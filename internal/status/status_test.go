package status

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/sweeney/button-display/internal/mirror"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{PollMs: 100, Broker: "tcp://localhost:1883", HTTPAddr: ":80", ButtonPin: 21, Display: "matrix"}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.PollMs != 100 {
		t.Errorf("Config.PollMs: got %d, want 100", snap.Config.PollMs)
	}
	if snap.Config.ButtonPin != 21 {
		t.Errorf("Config.ButtonPin: got %d, want 21", snap.Config.ButtonPin)
	}
	if snap.Ready {
		t.Error("expected Ready=false initially")
	}
	if snap.MQTTConnected {
		t.Error("expected MQTTConnected=false initially")
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.Update(mirror.StatePressed, true, mirror.EventCounts{Presses: 3, Releases: 2})

	snap := tr.Snapshot()
	if snap.Button != mirror.StatePressed {
		t.Errorf("Button: got %q, want PRESSED", snap.Button)
	}
	if !snap.Ready {
		t.Error("expected Ready=true")
	}
	if snap.Counts.Presses != 3 {
		t.Errorf("Counts.Presses: got %d, want 3", snap.Counts.Presses)
	}
	if snap.Counts.Releases != 2 {
		t.Errorf("Counts.Releases: got %d, want 2", snap.Counts.Releases)
	}
}

func TestSnapshotGlyph(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	if g := tr.Snapshot().Glyph(); g != "" {
		t.Errorf("Glyph before first sample: got %q, want empty", g)
	}

	tr.Update(mirror.StatePressed, true, mirror.EventCounts{})
	if g := tr.Snapshot().Glyph(); g != "A" {
		t.Errorf("Glyph while pressed: got %q, want A", g)
	}

	tr.Update(mirror.StateReleased, true, mirror.EventCounts{})
	if g := tr.Snapshot().Glyph(); g != "" {
		t.Errorf("Glyph while released: got %q, want empty", g)
	}
}

func TestSetMQTTConnected(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.SetMQTTConnected(true)
	if !tr.Snapshot().MQTTConnected {
		t.Error("expected MQTTConnected=true")
	}

	tr.SetMQTTConnected(false)
	if tr.Snapshot().MQTTConnected {
		t.Error("expected MQTTConnected=false")
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Now().Add(-90 * time.Second)
	tr := NewTracker(start, Config{})

	up := tr.Snapshot().Uptime()
	if up < 90*time.Second || up > 91*time.Second {
		t.Errorf("Uptime: got %v, want ~90s", up)
	}
}

func TestFormatJSON(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{PollMs: 100, HeartbeatMs: 900000, Broker: "tcp://broker:1883", HTTPAddr: ":80", ButtonPin: 21, Display: "matrix"}
	tr := NewTracker(start, cfg)
	tr.Update(mirror.StatePressed, true, mirror.EventCounts{Presses: 7, Releases: 6})
	tr.SetMQTTConnected(true)

	var sj StatusJSON
	if err := json.Unmarshal(FormatJSON(tr.Snapshot()), &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if sj.Status.Button != "PRESSED" {
		t.Errorf("button: got %q, want PRESSED", sj.Status.Button)
	}
	if sj.Status.Glyph != "A" {
		t.Errorf("glyph: got %q, want A", sj.Status.Glyph)
	}
	if !sj.Status.Ready {
		t.Error("expected ready=true")
	}
	if sj.Status.Counts.Presses != 7 || sj.Status.Counts.Releases != 6 {
		t.Errorf("counts: got %+v", sj.Status.Counts)
	}
	if sj.Status.Event != "" {
		t.Errorf("event: got %q, want empty for web output", sj.Status.Event)
	}
	if sj.Status.Config.Display != "matrix" {
		t.Errorf("config.display: got %q, want matrix", sj.Status.Config.Display)
	}
}

func TestFormatJSONUnknownState(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	var sj StatusJSON
	if err := json.Unmarshal(FormatJSON(tr.Snapshot()), &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sj.Status.Button != "UNKNOWN" {
		t.Errorf("button: got %q, want UNKNOWN before first sample", sj.Status.Button)
	}
	if sj.Status.Glyph != "" {
		t.Errorf("glyph: got %q, want empty before first sample", sj.Status.Glyph)
	}
}

func TestFormatStatusEvent(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.Update(mirror.StateReleased, true, mirror.EventCounts{})

	var sj StatusJSON
	if err := json.Unmarshal(FormatStatusEvent(tr.Snapshot(), "SHUTDOWN", "SIGTERM"), &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sj.Status.Event != "SHUTDOWN" {
		t.Errorf("event: got %q, want SHUTDOWN", sj.Status.Event)
	}
	if sj.Status.Reason != "SIGTERM" {
		t.Errorf("reason: got %q, want SIGTERM", sj.Status.Reason)
	}
}

func TestFormatStatusEventNetwork(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.SetNetwork(&NetworkInfo{Type: "wifi", IP: "192.168.1.50", Status: "connected", SSID: "Home"})

	var sj StatusJSON
	if err := json.Unmarshal(FormatStatusEvent(tr.Snapshot(), "HEARTBEAT", ""), &sj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sj.Status.Network == nil {
		t.Fatal("expected network block")
	}
	if sj.Status.Network.IP != "192.168.1.50" {
		t.Errorf("network.ip: got %q", sj.Status.Network.IP)
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			state := mirror.StateReleased
			if n%2 == 0 {
				state = mirror.StatePressed
			}
			tr.Update(state, true, mirror.EventCounts{Presses: n})
		}(i)
		go func() {
			defer wg.Done()
			_ = tr.Snapshot()
		}()
	}
	wg.Wait()

	snap := tr.Snapshot()
	if snap.Button != mirror.StatePressed && snap.Button != mirror.StateReleased {
		t.Errorf("unexpected final state %q", snap.Button)
	}
}
