// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tollmatrix/arrowio"
	"github.com/katalvlaran/tollmatrix/config"
	"github.com/katalvlaran/tollmatrix/csvio"
	"github.com/katalvlaran/tollmatrix/pipeline"
	"github.com/katalvlaran/tollmatrix/report"
	"github.com/katalvlaran/tollmatrix/table"
)

// app is the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string
	csvOut     string
	arrowOut   string
	cumulative bool

	runner *pipeline.Runner
	format *report.Formatter
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, format: report.NewFormatter()}

	root := &cobra.Command{
		Use:           "tollmatrix",
		Short:         "Distance matrices, toll rates and weekly coverage from CSV tables",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to tollmatrix.yaml (defaults when empty)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level override (debug|info|warn|error)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format override (text|json)")
	pf.StringVar(&a.csvOut, "out", "", "Also write the result table as CSV")
	pf.StringVar(&a.arrowOut, "arrow-out", "", "Also write the result table as an Arrow IPC file")
	pf.BoolVar(&a.cumulative, "cumulative", false, "Chain legs into cumulative route distances")
	pf.IntVar(&a.format.Precision, "precision", -1, "Float decimals in printed tables (-1 = shortest)")

	root.AddCommand(
		a.distanceCmd(),
		a.unrollCmd(),
		a.thresholdCmd(),
		a.ratesCmd(),
		a.coverageCmd(),
		a.fleetCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the runner.
func (a *app) setup() error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.cumulative {
		cfg.Matrix.Cumulative = true
	}

	log, err := newLogger(a.stderr, cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	log.Debug("config loaded", "path", a.configPath, "reconcile", cfg.Matrix.Reconcile,
		"window_policy", cfg.Rates.WindowPolicy, "weekend_policy", cfg.Rates.WeekendPolicy)

	if a.runner, err = pipeline.New(cfg, log); err != nil {
		return err
	}

	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch lc.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q unknown: want text|json", lc.Format)
	}
}

// emit prints t and writes the optional file copies.
func (a *app) emit(t *table.Table) error {
	if err := a.format.Table(a.stdout, t); err != nil {
		return err
	}

	return a.writeFiles(t)
}

// writeFiles writes t to --out and --arrow-out when set.
func (a *app) writeFiles(t *table.Table) error {
	if a.csvOut != "" {
		if err := csvio.WriteFile(a.csvOut, t); err != nil {
			return err
		}
		slog.Info("csv written", "path", a.csvOut, "rows", t.Len())
	}
	if a.arrowOut != "" {
		if err := arrowio.WriteFile(a.arrowOut, t); err != nil {
			return err
		}
		slog.Info("arrow written", "path", a.arrowOut, "rows", t.Len())
	}

	return nil
}
