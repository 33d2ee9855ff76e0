package button

import (
	"errors"
	"testing"
)

func TestFakeReaderRead(t *testing.T) {
	samples := []Sample{
		{Pressed: true},
		{Pressed: false},
		{Pressed: true},
	}

	f := NewFakeReader(samples)

	want := []bool{true, false, true}
	for i, w := range want {
		pressed, err := f.Read()
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", i, err)
		}
		if pressed != w {
			t.Errorf("sample %d: expected %v, got %v", i, w, pressed)
		}
	}
}

func TestFakeReaderRepeatsLastSample(t *testing.T) {
	f := NewFakeReader([]Sample{{Pressed: false}, {Pressed: true}})

	f.Read()
	f.Read()

	// Exhausted: last sample repeats
	for i := 0; i < 3; i++ {
		pressed, err := f.Read()
		if err != nil {
			t.Fatalf("repeat %d: unexpected error: %v", i, err)
		}
		if !pressed {
			t.Errorf("repeat %d: expected true, got false", i)
		}
	}
}

func TestFakeReaderSampleError(t *testing.T) {
	readErr := errors.New("accessor gone")
	f := NewFakeReader([]Sample{
		{Pressed: true},
		{Err: readErr},
		{Pressed: true},
	})

	if pressed, err := f.Read(); err != nil || !pressed {
		t.Errorf("sample 0: expected (true, nil), got (%v, %v)", pressed, err)
	}
	if _, err := f.Read(); !errors.Is(err, readErr) {
		t.Errorf("sample 1: expected scripted error, got %v", err)
	}
	if pressed, err := f.Read(); err != nil || !pressed {
		t.Errorf("sample 2: expected (true, nil), got (%v, %v)", pressed, err)
	}
}

func TestFakeReaderReadError(t *testing.T) {
	f := NewFakeReader([]Sample{{Pressed: true}})
	f.ReadError = errors.New("hard fault")

	if _, err := f.Read(); err == nil {
		t.Error("expected error from Read")
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)
	if _, err := f.Read(); err == nil {
		t.Error("expected error when no samples configured")
	}
}

func TestFakeReaderCloseAndReset(t *testing.T) {
	f := NewFakeReader([]Sample{{Pressed: true}, {Pressed: false}})

	f.Read()
	f.Close()
	if !f.Closed {
		t.Error("expected Closed=true after Close")
	}
	if f.Reads != 1 {
		t.Errorf("expected 1 read, got %d", f.Reads)
	}

	f.Reset()
	if f.Closed || f.Reads != 0 {
		t.Error("expected Reset to clear Closed and Reads")
	}
	if pressed, _ := f.Read(); !pressed {
		t.Error("expected first sample again after Reset")
	}
}
