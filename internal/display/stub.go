//go:build !linux

package display

import "errors"

// Matrix is not available on non-Linux platforms.
type Matrix struct{}

// NewMatrix returns an error on non-Linux platforms.
func NewMatrix(chipName string, rowPins, colPins []int) (*Matrix, error) {
	return nil, errors.New("display: gpio matrix requires Linux")
}

// Show is not implemented on non-Linux platforms.
func (m *Matrix) Show(glyph rune) error { return errors.New("display: not supported") }

// Clear is not implemented on non-Linux platforms.
func (m *Matrix) Clear() error { return errors.New("display: not supported") }

// Close is not implemented on non-Linux platforms.
func (m *Matrix) Close() error { return nil }

// LED is not available on non-Linux platforms.
type LED struct{}

// NewLED returns an error on non-Linux platforms.
func NewLED(pin int) (*LED, error) {
	return nil, errors.New("display: gpio lamp requires Linux")
}

// Show is not implemented on non-Linux platforms.
func (l *LED) Show(glyph rune) error { return errors.New("display: not supported") }

// Clear is not implemented on non-Linux platforms.
func (l *LED) Clear() error { return errors.New("display: not supported") }

// Close is not implemented on non-Linux platforms.
func (l *LED) Close() error { return nil }
