// Package convert rewrites per-base validation/test data into the layout
// used for training: only the ID and Sequence columns are kept, and a
// leading row-index column is written.
package convert

import (
	"path/filepath"

	"github.com/bedict/haplotype/internal/frame"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultEditor is the base editor whose data is converted when none is
// given.
const DefaultEditor = "ABEmax"

// File names inside an editor's test data directory.
const (
	InputFile  = "perbase.csv"
	OutputFile = "perbase_testdata_train_format.csv"
)

// KeptColumns are the columns written to the output, in order.
var KeptColumns = []string{"ID", "Sequence"}

// ErrNoBaseDir is returned when Options.BaseDir is empty.
var ErrNoBaseDir = errors.New("base directory is required")

// Options configures a conversion.
type Options struct {
	BaseDir string // root holding data/test_data/<editor>/
	Editor  string // defaults to DefaultEditor

	Logger logrus.FieldLogger // defaults to the standard logrus logger
	Fs     afero.Fs           // defaults to the OS filesystem
}

// Result describes a completed conversion.
type Result struct {
	Input  string
	Output string
	Rows   int
}

// Paths returns the input and output files for opts.
func (opts Options) Paths() (input, output string) {
	dir := filepath.Join(opts.BaseDir, "data", "test_data", opts.editor())
	return filepath.Join(dir, InputFile), filepath.Join(dir, OutputFile)
}

func (opts Options) editor() string {
	if opts.Editor == "" {
		return DefaultEditor
	}
	return opts.Editor
}

// Run converts the editor's perbase.csv and writes the train-format file
// next to it, replacing any previous output.
func Run(opts Options) (Result, error) {
	if opts.BaseDir == "" {
		return Result{}, ErrNoBaseDir
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	input, output := opts.Paths()
	l := opts.Logger.WithFields(logrus.Fields{
		"editor": opts.editor(),
		"input":  input,
	})

	tbl, err := readTable(opts.Fs, input)
	if err != nil {
		return Result{}, err
	}
	l.WithField("rows", tbl.Len()).Debug("read per-base data")

	kept, err := tbl.Select(KeptColumns...)
	if err != nil {
		return Result{}, errors.Wrapf(err, "reading %s", input)
	}

	if err := writeTable(opts.Fs, output, kept); err != nil {
		return Result{}, err
	}

	l.WithFields(logrus.Fields{
		"output": output,
		"rows":   kept.Len(),
	}).Info("wrote train-format data")

	return Result{Input: input, Output: output, Rows: kept.Len()}, nil
}

func readTable(fs afero.Fs, path string) (*frame.Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input")
	}
	defer f.Close()

	tbl, err := frame.ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return tbl, nil
}

func writeTable(fs afero.Fs, path string, tbl *frame.Table) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close output")
		}
	}()

	if err := frame.WriteCSV(f, tbl, frame.WriteOptions{Index: true}); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
