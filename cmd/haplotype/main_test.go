package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bedict/haplotype/internal/frame"
	"github.com/bedict/haplotype/internal/logfile"
	"github.com/bedict/haplotype/internal/serialization"
	"github.com/bedict/haplotype/internal/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const predictionsCSV = `,Inp_seq,Outp_seq,true_score,pred_score
0,seq_0,out_0,1,5
1,seq_1,out_1,2,6
2,seq_2,out_2,3,7
3,seq_3,out_3,4,8
4,seq_4,out_4,5,7
`

func TestRunVersion(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer

	require.NoError(t, run(args{ShowVersion: &struct{}{}}, &out, logger))
	assert.Equal(t, "haplotype "+version+"\n", out.String())
}

func TestRunConvert(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "data", "test_data", "ABEmax")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "perbase.csv"), []byte("ID,Sequence,Score\nseq_0,ACGT,0.5\n"), 0o644))

	logger, _ := test.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run(args{Convert: &convertCmd{BaseDir: base, Editor: "ABEmax"}}, &out, logger))
	assert.Contains(t, out.String(), "wrote 1 rows to ")

	got, err := os.ReadFile(filepath.Join(dir, "perbase_testdata_train_format.csv"))
	require.NoError(t, err)
	assert.Equal(t, ",ID,Sequence\n0,seq_0,ACGT\n", string(got))
}

func TestRunDevices(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer

	require.NoError(t, run(args{Devices: &devicesCmd{}}, &out, logger))
	assert.Contains(t, out.String(), "selected: cpu\n")
}

func TestRunCorr(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "/preds.csv", []byte(predictionsCSV), 0o644))
	logger, _ := test.NewNullLogger()

	var out bytes.Buffer
	require.NoError(t, runCorr(corrCmd{Predictions: "/preds.csv", Log: "/scores.log"}, &out, mfs, logger))
	assert.True(t, strings.HasPrefix(out.String(), "spearman=0.820783 (p=0.0886) pearson=0.832050 (p=0.0805)"), out.String())

	lines, err := logfile.ReadAll(mfs, "/scores.log")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "/preds.csv spearman="))
}

func TestRunCorrSave(t *testing.T) {
	dir := t.TempDir()
	preds := filepath.Join(dir, "preds.csv")
	require.NoError(t, os.WriteFile(preds, []byte(predictionsCSV), 0o644))
	save := filepath.Join(dir, "scores.bin")
	logger, _ := test.NewNullLogger()

	var out bytes.Buffer
	require.NoError(t, runCorr(corrCmd{Predictions: preds, Save: save}, &out, afero.NewOsFs(), logger))

	got, err := serialization.ReadAs[scores](save)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rows)
	assert.InDelta(t, 0.8320502943378437, got.Pearson.Coefficient, 1e-9)
	assert.InDelta(t, stats.HarmonicMean(got.Spearman.Coefficient, got.Pearson.Coefficient), got.Harmonic, 1e-12)
}

func TestRunCorrConstant(t *testing.T) {
	mfs := afero.NewMemMapFs()
	csv := "Inp_seq,Outp_seq,true_score,pred_score\na,b,1,0.5\nc,d,2,0.5\ne,f,3,0.5\n"
	require.NoError(t, afero.WriteFile(mfs, "/p.csv", []byte(csv), 0o644))
	logger, _ := test.NewNullLogger()

	err := runCorr(corrCmd{Predictions: "/p.csv"}, &bytes.Buffer{}, mfs, logger)
	assert.ErrorIs(t, err, stats.ErrConstantInput)
}

func TestRunCorrMissingScore(t *testing.T) {
	tests := map[string]string{
		"empty cell": "Inp_seq,Outp_seq,true_score,pred_score\na,b,1,0.5\nc,d,,0.7\ne,f,3,0.9\n",
		"NaN cell":   "Inp_seq,Outp_seq,true_score,pred_score\na,b,1,0.5\nc,d,2,NaN\ne,f,3,0.9\n",
	}
	for name, csv := range tests {
		t.Run(name, func(t *testing.T) {
			mfs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(mfs, "/p.csv", []byte(csv), 0o644))
			logger, _ := test.NewNullLogger()

			err := runCorr(corrCmd{Predictions: "/p.csv"}, &bytes.Buffer{}, mfs, logger)
			var missing *frame.MissingValueError
			require.True(t, errors.As(err, &missing), "got %v", err)
			assert.Equal(t, 1, missing.Row)
		})
	}
}

func TestRunCorrMissingColumn(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "/p.csv", []byte("Inp_seq,Outp_seq,true_score\na,b,1\n"), 0o644))
	logger, _ := test.NewNullLogger()

	err := runCorr(corrCmd{Predictions: "/p.csv"}, &bytes.Buffer{}, mfs, logger)
	assert.ErrorIs(t, err, frame.ErrNoSuchColumn)
}
