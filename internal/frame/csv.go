package frame

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// DefaultNAValues are the cell texts read as missing by ReadCSV, the same
// set pandas recognises by default.
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// ReadOptions controls CSV input.
type ReadOptions struct {
	// NAValues lists cell texts read as missing. An empty cell is always
	// missing.
	NAValues []string
}

// ReadCSV reads a table from CSV with a header row. Cells matching
// DefaultNAValues are missing; every other cell is kept as a string.
func ReadCSV(r io.Reader) (*Table, error) {
	return ReadCSVWithOptions(r, ReadOptions{NAValues: DefaultNAValues})
}

// ReadCSVWithOptions is ReadCSV with an explicit set of missing-value texts.
func ReadCSVWithOptions(r io.Reader, opts ReadOptions) (*Table, error) {
	records, err := gocsv.DefaultCSVReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse csv")
	}
	if len(records) == 0 {
		return nil, errors.New("csv has no header")
	}

	na := map[string]bool{"": true}
	for _, s := range opts.NAValues {
		na[s] = true
	}

	header := records[0]
	rows := records[1:]
	cols := make([]Column, len(header))
	for j, name := range header {
		cols[j] = Column{Name: name, Values: make([]Value, len(rows))}
		for i, rec := range rows {
			if !na[rec[j]] {
				cols[j].Values[i] = rec[j]
			}
		}
	}
	return New(cols...)
}

// WriteOptions controls CSV output.
type WriteOptions struct {
	// Index writes a leading column with an empty header holding the
	// 0-based row number.
	Index bool
}

// WriteCSV writes t as CSV with a header row. Missing cells are written
// empty.
func WriteCSV(w io.Writer, t *Table, opts WriteOptions) error {
	out := gocsv.DefaultCSVWriter(w)

	header := t.Columns()
	if opts.Index {
		header = append([]string{""}, header...)
	}
	if err := out.Write(header); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for i := 0; i < t.rows; i++ {
		rec := make([]string, 0, len(header))
		if opts.Index {
			rec = append(rec, strconv.Itoa(i))
		}
		for _, v := range t.Row(i) {
			rec = append(rec, formatCell(v))
		}
		if err := out.Write(rec); err != nil {
			return errors.Wrapf(err, "failed to write csv row %d", i)
		}
	}

	out.Flush()
	return errors.Wrap(out.Error(), "failed to flush csv")
}

func formatCell(v Value) string {
	if IsMissing(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
