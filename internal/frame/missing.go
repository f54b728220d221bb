package frame

import (
	"fmt"
	"math"
)

// MissingValueError reports missing cells in a table.
type MissingValueError struct {
	Column string // first column with a missing cell
	Row    int    // first missing row in Column
	Count  int    // total missing cells
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("table has %d missing value(s), first in column %q row %d", e.Count, e.Column, e.Row)
}

// IsMissing reports whether v is a missing value: nil or a floating-point
// NaN.
func IsMissing(v Value) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// CheckMissing returns a *MissingValueError if any cell of t is missing.
func CheckMissing(t *Table) error {
	var first *MissingValueError
	count := 0
	for _, name := range t.names {
		for i, v := range t.cols[name] {
			if !IsMissing(v) {
				continue
			}
			count++
			if first == nil {
				first = &MissingValueError{Column: name, Row: i}
			}
		}
	}
	if first == nil {
		return nil
	}
	first.Count = count
	return first
}

// AssertNoMissing panics with a *MissingValueError if any cell of t is
// missing. Use it where missing data means the pipeline cannot continue.
func AssertNoMissing(t *Table) {
	if err := CheckMissing(t); err != nil {
		panic(err)
	}
}
