// Package display renders a single glyph on a small LED display, with
// hardware abstraction. The real implementations drive GPIO; the fake
// records calls for tests.
package display

// Default matrix wiring (BCM numbering). Rows source current, columns sink
// it: a pixel lights when its row line is high and its column line is low.
var (
	DefaultRowPins = []int{2, 3, 4, 17, 27}
	DefaultColPins = []int{5, 6, 13, 19, 26}
)

// DefaultLEDPin is the BCM pin the single-lamp display drives.
const DefaultLEDPin = 12

// Display shows one glyph at a time.
type Display interface {
	// Show renders the glyph, replacing whatever is currently shown.
	Show(glyph rune) error

	// Clear blanks the display.
	Clear() error

	// Close blanks the display and releases its resources.
	Close() error
}

// Null is a Display that does nothing. Used when the display is disabled.
type Null struct{}

// Show does nothing.
func (Null) Show(rune) error { return nil }

// Clear does nothing.
func (Null) Clear() error { return nil }

// Close does nothing.
func (Null) Close() error { return nil }
