package series

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromCSV parses a numeric CSV stream into a Series.
//
// Accepted shapes, detected from the first record:
//   - one column:  value            (timings default to 0..n-1)
//   - two columns: time,value       (timings taken from column 0)
//
// An empty value cell or the literal "nan" (any case) marks a gap; in
// one-column input a fully blank line is a gap row. A header row is
// tolerated: if the first record does not parse as numbers it is
// skipped once.
// Returns ErrBadCSV for structural problems and propagates the usual
// construction errors (ErrEmptySeries, ErrTimingsOrder).
// Complexity: O(n).
func FromCSV(r io.Reader, opts ...Option) (*Series, error) {
	// Records are split by hand: encoding/csv silently drops fully
	// blank lines, which would swallow gap rows and shift every
	// observation after them.
	sc := bufio.NewScanner(r)

	var (
		values  []float64
		timings []float64
		cols    int // 0 until the shape is fixed
		line    int
	)
	for sc.Scan() {
		line++
		rec := splitRecord(sc.Text())

		if cols == 0 {
			switch len(rec) {
			case 1, 2:
				cols = len(rec)
			default:
				return nil, fmt.Errorf("%w: record %d has %d columns, want 1 or 2",
					ErrBadCSV, line, len(rec))
			}
			// Tolerate a single header row.
			if !recordNumeric(rec) {
				continue
			}
		}
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: record %d has %d columns, want %d",
				ErrBadCSV, line, len(rec), cols)
		}

		valueCell := rec[cols-1]
		v, err := parseCell(valueCell)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d value %q", ErrBadCSV, line, valueCell)
		}
		values = append(values, v)

		if cols == 2 {
			t, err := strconv.ParseFloat(rec[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d timing %q", ErrBadCSV, line, rec[0])
			}
			timings = append(timings, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}

	if cols == 2 {
		opts = append([]Option{WithTimings(timings)}, opts...)
	}

	return New(values, opts...)
}

// splitRecord breaks one line into trimmed cells. A blank line yields a
// single empty cell, so in one-column input it reads as a gap row.
func splitRecord(raw string) []string {
	cells := strings.Split(strings.TrimSuffix(raw, "\r"), ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// parseCell converts one value cell; empty or "nan" marks a gap.
func parseCell(cell string) (float64, error) {
	if cell == "" || strings.EqualFold(cell, "nan") {
		return nan, nil
	}
	return strconv.ParseFloat(cell, 64)
}

// recordNumeric reports whether every cell of rec parses as a number
// (or marks a gap). Used once to skip an optional header row.
func recordNumeric(rec []string) bool {
	for _, cell := range rec {
		if _, err := parseCell(cell); err != nil {
			return false
		}
	}
	return true
}
