package main

import (
	"fmt"
	"io"

	"github.com/bedict/haplotype/internal/frame"
	"github.com/bedict/haplotype/internal/logfile"
	"github.com/bedict/haplotype/internal/serialization"
	"github.com/bedict/haplotype/internal/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// predictionColumns are the columns corr reads; any others, such as a
// leading index column, are ignored.
var predictionColumns = []string{"Inp_seq", "Outp_seq", "true_score", "pred_score"}

// scores is what --save dumps.
type scores struct {
	Predictions string
	Rows        int
	Spearman    stats.Correlation
	Pearson     stats.Correlation
	Harmonic    float64
}

func (s scores) String() string {
	return fmt.Sprintf("spearman=%.6f (p=%.3g) pearson=%.6f (p=%.3g) harmonic_mean=%.6f",
		s.Spearman.Coefficient, s.Spearman.PValue,
		s.Pearson.Coefficient, s.Pearson.PValue,
		s.Harmonic)
}

// readPredictions loads the predictions table and fails on the first missing
// cell, so empty and NA-token scores never reach the correlation step.
func readPredictions(fs afero.Fs, path string) (*frame.Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open predictions")
	}
	defer f.Close()

	raw, err := frame.ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	tbl, err := raw.Select(predictionColumns...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := frame.CheckMissing(tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}

func score(path string, tbl *frame.Table) (scores, error) {
	ref, err := tbl.FloatColumn("true_score")
	if err != nil {
		return scores{}, err
	}
	pred, err := tbl.FloatColumn("pred_score")
	if err != nil {
		return scores{}, err
	}

	s := scores{Predictions: path, Rows: tbl.Len()}
	if s.Spearman, err = stats.Spearman(pred, ref); err != nil {
		return scores{}, errors.Wrap(err, "spearman")
	}
	if s.Pearson, err = stats.Pearson(pred, ref); err != nil {
		return scores{}, errors.Wrap(err, "pearson")
	}
	s.Harmonic = stats.HarmonicMean(s.Spearman.Coefficient, s.Pearson.Coefficient)
	return s, nil
}

func runCorr(cmd corrCmd, out io.Writer, fs afero.Fs, logger logrus.FieldLogger) error {
	tbl, err := readPredictions(fs, cmd.Predictions)
	if err != nil {
		return err
	}

	s, err := score(cmd.Predictions, tbl)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"path": cmd.Predictions,
		"rows": s.Rows,
	}).Debug("scored predictions")

	if _, err := fmt.Fprintln(out, s); err != nil {
		return err
	}

	if cmd.Log != "" {
		if err := logfile.AppendLine(fs, cmd.Log, cmd.Predictions+" "+s.String()+"\n"); err != nil {
			return err
		}
	}
	if cmd.Save != "" {
		if err := serialization.Dump(s, cmd.Save); err != nil {
			return err
		}
		logger.WithField("path", cmd.Save).Info("saved scores")
	}
	return nil
}
