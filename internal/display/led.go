//go:build linux

package display

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// LED is a one-lamp display: any glyph lights the lamp, Clear turns it off.
// It drives the pin through the /dev/gpiomem memory map, for boards with a
// plain indicator LED instead of a matrix.
type LED struct {
	pin rpio.Pin
}

// NewLED maps GPIO memory and configures the lamp pin as an output, off.
func NewLED(pin int) (*LED, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("map gpio memory: %w", err)
	}
	p := rpio.Pin(pin)
	p.Output()
	p.Low()
	return &LED{pin: p}, nil
}

// Show lights the lamp. The glyph must still be one the font covers; one
// lamp can only say "pressed".
func (l *LED) Show(glyph rune) error {
	if _, ok := GlyphFor(glyph); !ok {
		return fmt.Errorf("no bitmap for glyph %q", glyph)
	}
	l.pin.High()
	return nil
}

// Clear turns the lamp off.
func (l *LED) Clear() error {
	l.pin.Low()
	return nil
}

// Close turns the lamp off and unmaps GPIO memory.
func (l *LED) Close() error {
	l.pin.Low()
	return rpio.Close()
}
