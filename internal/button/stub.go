//go:build !linux

package button

import "errors"

// LineReader is not available on non-Linux platforms.
type LineReader struct{}

// NewLineReader returns an error on non-Linux platforms.
func NewLineReader(chipName string, pin int) (*LineReader, error) {
	return nil, errors.New("button: gpio character device requires Linux")
}

// Read is not implemented on non-Linux platforms.
func (r *LineReader) Read() (bool, error) {
	return false, errors.New("button: not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *LineReader) Close() error { return nil }

// MemReader is not available on non-Linux platforms.
type MemReader struct{}

// NewMemReader returns an error on non-Linux platforms.
func NewMemReader(pin int) (*MemReader, error) {
	return nil, errors.New("button: gpio memory map requires Linux")
}

// Read is not implemented on non-Linux platforms.
func (r *MemReader) Read() (bool, error) {
	return false, errors.New("button: not supported")
}

// Close is not implemented on non-Linux platforms.
func (r *MemReader) Close() error { return nil }
