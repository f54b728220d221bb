// Package main provides the haplotype command line tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/bedict/haplotype/internal/convert"
	"github.com/bedict/haplotype/internal/device"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const version = "v0.1.0"

type convertCmd struct {
	BaseDir string `arg:"--base-dir,required,env:HAPLOTYPE_BASE_DIR" help:"root holding data/test_data/<editor>/"`
	Editor  string `arg:"--editor,env:HAPLOTYPE_EDITOR" default:"ABEmax" help:"base editor whose data is converted"`
}

type devicesCmd struct {
	Accelerator bool `arg:"--accelerator" help:"select an accelerator if one is available"`
	Index       int  `arg:"--index" default:"0" help:"accelerator index to select"`
}

type corrCmd struct {
	Predictions string `arg:"--predictions,required" help:"predictions CSV with true_score and pred_score columns"`
	Log         string `arg:"--log" help:"append the result line to this file"`
	Save        string `arg:"--save" help:"dump the scores to this file"`
}

type args struct {
	LogLevel string `arg:"--log-level,env:HAPLOTYPE_LOG_LEVEL" default:"info" help:"log level"`

	ShowVersion *struct{}   `arg:"subcommand:version" help:"show version"`
	Convert     *convertCmd `arg:"subcommand:convert" help:"reduce perbase.csv to the train format"`
	Devices     *devicesCmd `arg:"subcommand:devices" help:"report accelerators and memory"`
	Corr        *corrCmd    `arg:"subcommand:corr" help:"score a predictions table"`
}

func (args) Description() string {
	return "haplotype - utilities for base-editing outcome prediction"
}

func (args) Version() string {
	return "haplotype " + version
}

func main() {
	var a args
	p := arg.MustParse(&a)

	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		p.Fail(err.Error())
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if p.Subcommand() == nil {
		p.WriteHelp(os.Stdout)
		os.Exit(2)
	}

	if err := run(a, os.Stdout, logger); err != nil {
		logger.WithError(err).Fatal("command failed")
	}
}

func run(a args, out io.Writer, logger logrus.FieldLogger) error {
	switch {
	case a.ShowVersion != nil:
		_, err := fmt.Fprintf(out, "haplotype %s\n", version)
		return err

	case a.Convert != nil:
		res, err := convert.Run(convert.Options{
			BaseDir: a.Convert.BaseDir,
			Editor:  a.Convert.Editor,
			Logger:  logger,
			Fs:      afero.NewOsFs(),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "wrote %d rows to %s\n", res.Rows, res.Output)
		return err

	case a.Devices != nil:
		rt := device.DefaultRuntime()
		target := device.Select(rt, a.Devices.Accelerator, a.Devices.Index)
		logger.WithFields(logrus.Fields{"runtime": rt.Name(), "target": target}).Debug("selected device")
		if err := device.Report(out, rt); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "selected: %s\n", target)
		return err

	case a.Corr != nil:
		return runCorr(*a.Corr, out, afero.NewOsFs(), logger)
	}
	return nil
}
