package display

import "fmt"

// FakeDisplay records Show and Clear calls for test assertions.
type FakeDisplay struct {
	// Glyphs contains the glyph from each successful Show call.
	Glyphs []rune

	// Clears counts Clear calls.
	Clears int

	// Showing is the currently rendered glyph, or 0 after a Clear.
	Showing rune

	// ShowError, if set, will be returned by Show.
	ShowError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeDisplay creates a FakeDisplay for testing.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// Show records the glyph. Unknown glyphs error like the real displays.
func (f *FakeDisplay) Show(glyph rune) error {
	if f.ShowError != nil {
		return f.ShowError
	}
	if _, ok := GlyphFor(glyph); !ok {
		return fmt.Errorf("no bitmap for glyph %q", glyph)
	}
	f.Glyphs = append(f.Glyphs, glyph)
	f.Showing = glyph
	return nil
}

// Clear records the call and blanks the fake.
func (f *FakeDisplay) Clear() error {
	f.Clears++
	f.Showing = 0
	return nil
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Showing = 0
	f.Closed = true
	return nil
}

// Reset clears recorded calls.
func (f *FakeDisplay) Reset() {
	f.Glyphs = nil
	f.Clears = 0
	f.Showing = 0
	f.ShowError = nil
	f.Closed = false
}
