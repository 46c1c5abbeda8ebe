package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"load-profiler/internal/config"
	"load-profiler/internal/loadprofile"
	"load-profiler/internal/logger"
	"load-profiler/internal/models"
	"load-profiler/internal/report"
)

type rootOptions struct {
	interval    time.Duration
	scaleFactor float64
	jsonOutput  bool
	noFiles     bool
	width       int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := loadDefaults()
	log := logger.New(stderr, cfg.Level(), cfg.LogFormat)
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "lpd <file.csv>",
		Short:         "Build a load profile from date, time and kw readings",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.scaleFactor != 0 && (opts.scaleFactor < 1.0 || opts.scaleFactor > 2.0) {
				return fmt.Errorf("--scale-factor must be between 1.0 and 2.0, got %g", opts.scaleFactor)
			}
			if opts.interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", opts.interval)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), log, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.interval, "interval", cfg.Interval, "resampling interval")
	flags.Float64Var(&opts.scaleFactor, "scale-factor", cfg.ScaleFactor,
		"estimate connected load as peak * factor (commercial 1.1-1.2, residential 1.2-1.3, lighting 1.5-2.0)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print the summary as JSON")
	flags.BoolVar(&opts.noFiles, "no-files", !cfg.WriteOutputs, "skip writing the _out, _peak and _factors files")
	flags.IntVar(&opts.width, "width", report.DefaultWidth, "summary box width")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// loadDefaults takes flag defaults from the environment. A broken
// environment falls back to built-in values rather than blocking the CLI.
func loadDefaults() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return &config.Config{
			LogLevel:     "warn",
			LogFormat:    "console",
			Interval:     loadprofile.DefaultInterval,
			WriteOutputs: true,
		}
	}
	return cfg
}

func run(out io.Writer, log logger.Logger, path string, opts *rootOptions) error {
	log.Debug("lpd", "Processing file", map[string]interface{}{"path": path})

	analysis, err := loadprofile.AnalyzeFile(path, loadprofile.Options{
		Interval:    opts.interval,
		ScaleFactor: opts.scaleFactor,
	})
	if err != nil {
		return err
	}
	if analysis.Dropped > 0 {
		log.Warning("lpd", "rows skipped", map[string]interface{}{
			"path":    path,
			"dropped": analysis.Dropped,
		})
	}

	summary := models.NewSummary(analysis)
	if opts.jsonOutput {
		raw, err := report.RenderJSON(summary)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(raw))
	} else {
		fmt.Fprintln(out, report.RenderText(summary, opts.width))
	}

	if opts.noFiles {
		return nil
	}
	written, err := loadprofile.WriteOutputs(path, analysis)
	if err != nil {
		return err
	}
	for _, f := range written.Files() {
		log.Info("lpd", "Output saved", map[string]interface{}{"path": f})
	}
	return nil
}
