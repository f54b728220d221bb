package frame

import "github.com/pkg/errors"

// Column names of a predictions table.
const (
	ColInputSeq  = "Inp_seq"
	ColOutputSeq = "Outp_seq"
	ColTrueScore = "true_score"
	ColPredScore = "pred_score"
)

// BuildPredictions assembles a predictions table. When trueScores is nil
// the table has columns Inp_seq, Outp_seq, pred_score; otherwise
// true_score is included before pred_score. All inputs must have the same
// length.
func BuildPredictions(inputs, outputs []string, trueScores, predScores []float64) (*Table, error) {
	n := len(inputs)
	if len(outputs) != n || len(predScores) != n || (trueScores != nil && len(trueScores) != n) {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"inputs=%d outputs=%d true=%d pred=%d", n, len(outputs), len(trueScores), len(predScores))
	}

	cols := []Column{
		Strings(ColInputSeq, inputs),
		Strings(ColOutputSeq, outputs),
	}
	if trueScores != nil {
		cols = append(cols, Floats(ColTrueScore, trueScores))
	}
	cols = append(cols, Floats(ColPredScore, predScores))

	return New(cols...)
}
