//go:build linux

package button

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// MemReader is the fallback accessor. It reads the button pin through the
// /dev/gpiomem memory map, addressed by BCM pin number — used when the
// character device path is missing (older kernels, chardev not exposed to
// the container).
type MemReader struct {
	pin rpio.Pin
}

// NewMemReader maps GPIO memory and configures the button pin as a
// pulled-up input.
func NewMemReader(pin int) (*MemReader, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("map gpio memory: %w", err)
	}
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return &MemReader{pin: p}, nil
}

// Read returns true while the button is held.
// Same inversion as the character device path: raw low = pressed.
func (r *MemReader) Read() (bool, error) {
	return r.pin.Read() == rpio.Low, nil
}

// Close drops the pull bias and unmaps GPIO memory.
func (r *MemReader) Close() error {
	r.pin.PullOff()
	return rpio.Close()
}
