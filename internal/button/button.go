// Package button provides pressed-state reading for a single hardware button
// with two access paths and a fail-safe default.
// The primary accessor uses the Linux GPIO character device; the fallback
// reads the /dev/gpiomem memory map. The fake allows testing without hardware.
package button

// DefaultPin is the BCM pin number the button is wired to.
const DefaultPin = 21

// DefaultChip is the GPIO character device the primary accessor opens.
const DefaultChip = "gpiochip0"

// Reader reads the button's pressed state.
type Reader interface {
	// Read returns true while the button is held.
	// The raw GPIO value is inverted: the line is pulled up and the button
	// shorts it to ground, so raw low = pressed.
	Read() (bool, error)

	// Close releases the underlying resources.
	Close() error
}
