package frame

import (
	"fmt"
	"strings"

	"github.com/bedict/haplotype/internal/parallel"
)

// UppercaseColumns replaces every cell of the named columns with its
// upper-cased string form. Missing cells stay missing. t is modified in
// place and returned. No column is changed if any name is unknown.
func UppercaseColumns(t *Table, names ...string) (*Table, error) {
	return UppercaseColumnsWithConfig(t, parallel.DefaultConfig(), names...)
}

// UppercaseColumnsWithConfig is UppercaseColumns with explicit parallelism.
func UppercaseColumnsWithConfig(t *Table, cfg parallel.Config, names ...string) (*Table, error) {
	cols := make([][]Value, len(names))
	for i, name := range names {
		values, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = values
	}

	parallel.ForCells(len(cols), t.rows, func(c, r int) {
		v := cols[c][r]
		if IsMissing(v) {
			return
		}
		switch v := v.(type) {
		case string:
			cols[c][r] = strings.ToUpper(v)
		default:
			cols[c][r] = strings.ToUpper(fmt.Sprint(v))
		}
	}, cfg)

	return t, nil
}
