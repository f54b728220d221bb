// Package frame provides a small column-oriented table used to exchange
// sequences and scores with the prediction pipeline.
//
// A cell holds any value; nil marks a missing value. Rows are identified by
// position only.
package frame

import (
	"strconv"

	"github.com/pkg/errors"
)

// Errors returned by table operations.
var (
	ErrNoSuchColumn    = errors.New("no such column")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrLengthMismatch  = errors.New("column lengths differ")
	ErrNotNumeric      = errors.New("value is not numeric")
)

// Value is a single cell. nil is a missing value.
type Value = any

// Column is a named sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// Strings builds a column from string values.
func Strings(name string, values []string) Column {
	col := Column{Name: name, Values: make([]Value, len(values))}
	for i, v := range values {
		col.Values[i] = v
	}
	return col
}

// Floats builds a column from float values.
func Floats(name string, values []float64) Column {
	col := Column{Name: name, Values: make([]Value, len(values))}
	for i, v := range values {
		col.Values[i] = v
	}
	return col
}

// Table is an ordered set of equal-length columns.
type Table struct {
	names []string
	cols  map[string][]Value
	rows  int
}

// New creates a table from columns. All columns must have the same length
// and distinct names.
func New(columns ...Column) (*Table, error) {
	t := &Table{cols: make(map[string][]Value, len(columns))}
	for _, c := range columns {
		if err := t.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn appends c to the table.
func (t *Table) AddColumn(c Column) error {
	if _, ok := t.cols[c.Name]; ok {
		return errors.Wrapf(ErrDuplicateColumn, "%q", c.Name)
	}
	if len(t.names) > 0 && len(c.Values) != t.rows {
		return errors.Wrapf(ErrLengthMismatch, "column %q has %d rows, table has %d", c.Name, len(c.Values), t.rows)
	}
	t.names = append(t.names, c.Name)
	t.cols[c.Name] = c.Values
	t.rows = len(c.Values)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the cells of the named column. The slice is shared with
// the table.
func (t *Table) Column(name string) ([]Value, error) {
	values, ok := t.cols[name]
	if !ok {
		return nil, errors.Wrapf(ErrNoSuchColumn, "%q", name)
	}
	return values, nil
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.names))
	for j, name := range t.names {
		row[j] = t.cols[name][i]
	}
	return row
}

// Select returns a new table holding only the named columns, in the order
// given. Cells are shared with t.
func (t *Table) Select(names ...string) (*Table, error) {
	out := &Table{cols: make(map[string][]Value, len(names))}
	for _, name := range names {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(Column{Name: name, Values: values}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FloatColumn returns the named column converted to float64. Strings are
// parsed; a missing or non-numeric cell is an error.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	values, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i, v := range values {
		f, err := toFloat(v)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q row %d", name, i)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v Value) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrNotNumeric, "%q", x)
		}
		return f, nil
	case nil:
		return 0, errors.Wrap(ErrNotNumeric, "missing value")
	default:
		return 0, errors.Wrapf(ErrNotNumeric, "%T", v)
	}
}
