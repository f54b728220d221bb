package frame

import (
	"fmt"
	"testing"

	"github.com/bedict/haplotype/internal/parallel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUppercaseColumns(t *testing.T) {
	tbl, err := New(
		Strings("seq", []string{"atg", "cta"}),
		Strings("ID", []string{"id_a", "id_b"}),
	)
	require.NoError(t, err)

	out, err := UppercaseColumns(tbl, "seq")
	require.NoError(t, err)
	assert.Same(t, tbl, out)

	seq, err := out.Column("seq")
	require.NoError(t, err)
	assert.Equal(t, []Value{"ATG", "CTA"}, seq)

	id, err := out.Column("ID")
	require.NoError(t, err)
	assert.Equal(t, []Value{"id_a", "id_b"}, id)
}

func TestUppercaseColumnsMissingAndNonString(t *testing.T) {
	tbl, err := New(Column{Name: "seq", Values: []Value{"acg", nil, 12, true}})
	require.NoError(t, err)

	_, err = UppercaseColumns(tbl, "seq")
	require.NoError(t, err)

	seq, _ := tbl.Column("seq")
	assert.Equal(t, []Value{"ACG", nil, "12", "TRUE"}, seq)
}

func TestUppercaseColumnsUnknown(t *testing.T) {
	tbl, err := New(Strings("seq", []string{"acg"}))
	require.NoError(t, err)

	_, err = UppercaseColumns(tbl, "seq", "Outp_seq")
	assert.True(t, errors.Is(err, ErrNoSuchColumn))

	seq, _ := tbl.Column("seq")
	assert.Equal(t, []Value{"acg"}, seq)
}

func TestUppercaseColumnsParallel(t *testing.T) {
	n := 10000
	a := make([]string, n)
	b := make([]string, n)
	for i := range a {
		a[i] = fmt.Sprintf("acgt%d", i)
		b[i] = fmt.Sprintf("tt%da", i)
	}
	tbl, err := New(Strings("a", a), Strings("b", b))
	require.NoError(t, err)

	cfg := parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 16}
	_, err = UppercaseColumnsWithConfig(tbl, cfg, "a", "b")
	require.NoError(t, err)

	ca, _ := tbl.Column("a")
	cb, _ := tbl.Column("b")
	for i := 0; i < n; i++ {
		require.Equal(t, fmt.Sprintf("ACGT%d", i), ca[i])
		require.Equal(t, fmt.Sprintf("TT%dA", i), cb[i])
	}
}

func TestBuildPredictions(t *testing.T) {
	inp := []string{"seq_0", "seq_1"}
	outp := []string{"out_0", "out_1"}
	pred := []float64{0.7, 0.1}

	without, err := BuildPredictions(inp, outp, nil, pred)
	require.NoError(t, err)
	assert.Equal(t, []string{ColInputSeq, ColOutputSeq, ColPredScore}, without.Columns())
	assert.Equal(t, 2, without.Len())

	with, err := BuildPredictions(inp, outp, []float64{0.8, 0.0}, pred)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inp_seq", "Outp_seq", "true_score", "pred_score"}, with.Columns())

	scores, err := with.FloatColumn(ColTrueScore)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.8, 0}, scores)
}

func TestBuildPredictionsLengthMismatch(t *testing.T) {
	_, err := BuildPredictions([]string{"a"}, []string{"b"}, nil, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = BuildPredictions([]string{"a"}, []string{"b"}, []float64{}, []float64{1})
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}
