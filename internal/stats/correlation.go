package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned for invalid inputs.
var (
	ErrLengthMismatch = errors.New("sequences have different lengths")
	ErrTooFewPoints   = errors.New("at least two points are required")
	ErrConstantInput  = errors.New("input is constant, correlation is undefined")
)

// Correlation is a correlation coefficient and the two-sided p-value of the
// test against zero correlation.
type Correlation struct {
	Coefficient float64
	PValue      float64
}

// Pearson returns the Pearson correlation of pred and ref.
func Pearson(pred, ref []float64) (Correlation, error) {
	if err := checkPair(pred, ref); err != nil {
		return Correlation{}, err
	}

	r, err := mstats.Pearson(pred, ref)
	if err != nil {
		return Correlation{}, errors.Wrap(err, "pearson")
	}
	return withPValue(clamp(r), len(pred)), nil
}

// Spearman returns the Spearman rank correlation of pred and ref. Tied
// values receive the average of their ranks.
func Spearman(pred, ref []float64) (Correlation, error) {
	if err := checkPair(pred, ref); err != nil {
		return Correlation{}, err
	}

	r, err := mstats.Pearson(Rank(pred), Rank(ref))
	if err != nil {
		return Correlation{}, errors.Wrap(err, "spearman")
	}
	return withPValue(clamp(r), len(pred)), nil
}

func checkPair(pred, ref []float64) error {
	if len(pred) != len(ref) {
		return errors.Wrapf(ErrLengthMismatch, "%d predictions, %d references", len(pred), len(ref))
	}
	if len(pred) < 2 {
		return errors.Wrapf(ErrTooFewPoints, "got %d", len(pred))
	}
	inputs := []struct {
		name   string
		values []float64
	}{
		{"predictions", pred},
		{"references", ref},
	}
	for _, in := range inputs {
		sd, err := mstats.StandardDeviationPopulation(in.values)
		if err != nil {
			return errors.Wrap(err, in.name)
		}
		if sd == 0 {
			return errors.Wrap(ErrConstantInput, in.name)
		}
	}
	return nil
}

// withPValue attaches the two-sided p-value of r over n points, from
// Student's t with n-2 degrees of freedom.
func withPValue(r float64, n int) Correlation {
	c := Correlation{Coefficient: r, PValue: 1}
	df := float64(n - 2)
	switch {
	case df <= 0:
		// Two points always lie on a line.
	case 1-math.Abs(r) < perfectTolerance:
		c.PValue = 0
	default:
		t := r * math.Sqrt(df/(1-r*r))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		c.PValue = math.Min(1, 2*dist.Survival(math.Abs(t)))
	}
	return c
}

// perfectTolerance is how close |r| must be to 1 to count as a perfect fit.
const perfectTolerance = 1e-12

// clamp absorbs rounding that pushes |r| past 1.
func clamp(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}
