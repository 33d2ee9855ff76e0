//go:build linux

package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// scanInterval is how long each row stays lit per refresh pass. Five rows at
// 2ms gives a 100Hz frame rate.
const scanInterval = 2 * time.Millisecond

// Matrix drives a multiplexed 5x5 LED matrix over GPIO character device
// lines. A background goroutine scans one row at a time; Show and Clear only
// swap the frame buffer.
type Matrix struct {
	chip *gpiocdev.Chip
	rows *gpiocdev.Lines
	cols *gpiocdev.Lines

	mu    sync.Mutex
	frame Glyph

	stop chan struct{}
	done chan struct{}
}

// NewMatrix requests the row and column lines on the named chip and starts
// the refresh goroutine. Exactly five row and five column pins are required.
func NewMatrix(chipName string, rowPins, colPins []int) (*Matrix, error) {
	if len(rowPins) != 5 || len(colPins) != 5 {
		return nil, fmt.Errorf("matrix needs 5 row and 5 column pins, got %d and %d", len(rowPins), len(colPins))
	}

	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	// Rows idle low, columns idle high: everything dark.
	rows, err := chip.RequestLines(rowPins, gpiocdev.AsOutput(0, 0, 0, 0, 0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request row pins: %w", err)
	}

	cols, err := chip.RequestLines(colPins, gpiocdev.AsOutput(1, 1, 1, 1, 1))
	if err != nil {
		rows.Close()
		chip.Close()
		return nil, fmt.Errorf("request column pins: %w", err)
	}

	m := &Matrix{
		chip: chip,
		rows: rows,
		cols: cols,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go m.scan()
	return m, nil
}

// Show renders the glyph. An unknown glyph is an error and leaves the
// previous frame up.
func (m *Matrix) Show(glyph rune) error {
	g, ok := GlyphFor(glyph)
	if !ok {
		return fmt.Errorf("no bitmap for glyph %q", glyph)
	}
	m.mu.Lock()
	m.frame = g
	m.mu.Unlock()
	return nil
}

// Clear blanks the display.
func (m *Matrix) Clear() error {
	m.mu.Lock()
	m.frame = Glyph{}
	m.mu.Unlock()
	return nil
}

// scan multiplexes the frame buffer onto the matrix, one row per tick.
func (m *Matrix) scan() {
	defer close(m.done)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	row := 0
	for {
		select {
		case <-m.stop:
			m.rows.SetValues([]int{0, 0, 0, 0, 0})
			m.cols.SetValues([]int{1, 1, 1, 1, 1})
			return
		case <-ticker.C:
			m.mu.Lock()
			frame := m.frame
			m.mu.Unlock()

			m.lightRow(row, frame)
			row = (row + 1) % 5
		}
	}
}

// lightRow drives one row of the frame.
// All rows go low before the columns change so a half-updated column pattern
// never ghosts onto the previous row.
func (m *Matrix) lightRow(row int, frame Glyph) {
	rowVals := []int{0, 0, 0, 0, 0}
	m.rows.SetValues(rowVals)

	colVals := make([]int, 5)
	for col := 0; col < 5; col++ {
		if frame.Lit(row, col) {
			colVals[col] = 0 // column sinks: pixel lit
		} else {
			colVals[col] = 1
		}
	}
	m.cols.SetValues(colVals)

	rowVals[row] = 1
	m.rows.SetValues(rowVals)
}

// Close stops the refresh goroutine, blanks the display, and releases the
// lines and chip.
func (m *Matrix) Close() error {
	close(m.stop)
	<-m.done

	var errs []error
	if err := m.cols.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close column pins: %w", err))
	}
	if err := m.rows.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close row pins: %w", err))
	}
	if err := m.chip.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close chip: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
