//go:build linux

package button

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// LineReader is the primary accessor. It reads the button line through the
// Linux GPIO character device.
type LineReader struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewLineReader requests the button line on the named chip.
// The line is pulled up; the button shorts it to ground when held.
func NewLineReader(chipName string, pin int) (*LineReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request button pin %d: %w", pin, err)
	}

	return &LineReader{chip: chip, line: line}, nil
}

// Read returns true while the button is held.
// Inverts raw: raw low (0) = pressed, raw high (1) = released.
func (r *LineReader) Read() (bool, error) {
	raw, err := r.line.Value()
	if err != nil {
		return false, fmt.Errorf("read button pin: %w", err)
	}
	return raw == 0, nil
}

// Close releases the line and chip.
// Reconfigures the pin to input with pull-up before closing so the button
// wiring reads the same for whatever claims the pin next.
func (r *LineReader) Close() error {
	var errs []error

	if r.line != nil {
		if err := r.line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullUp); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure button pin: %w", err))
		}
		if err := r.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
