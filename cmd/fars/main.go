// Command fars summarizes yearly accident data files and renders per-state
// accident maps.
//
// Usage:
//
//	fars summarize 2013 2014 2015
//	fars plot 48 2015
//
// Year files are resolved as accident_<year>.csv.bz2 inside the data
// directory (--data-dir, or FARS_DATA_DIR).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fars-summary/internal/adapter/csvfile"
	"github.com/couchcryptid/fars-summary/internal/adapter/geoplot"
	httpadapter "github.com/couchcryptid/fars-summary/internal/adapter/http"
	"github.com/couchcryptid/fars-summary/internal/config"
	"github.com/couchcryptid/fars-summary/internal/fars"
	"github.com/couchcryptid/fars-summary/internal/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the pipeline together for one invocation.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	batch      *fars.BatchLoader
	summarizer *fars.Summarizer
	plotter    *fars.StatePlotter
	srv        *httpadapter.Server
}

func newRootCmd() *cobra.Command {
	var dataDir, plotDir string

	root := &cobra.Command{
		Use:          "fars",
		Short:        "Summarize and map yearly accident data",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding accident_<year>.csv.bz2 files (default $FARS_DATA_DIR or .)")
	root.PersistentFlags().StringVar(&plotDir, "plot-dir", "", "directory for rendered maps (default $FARS_PLOT_DIR or .)")

	root.AddCommand(newSummarizeCmd(&dataDir, &plotDir))
	root.AddCommand(newPlotCmd(&dataDir, &plotDir))
	return root
}

func newSummarizeCmd(dataDir, plotDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <year>...",
		Short: "Print the month-by-year accident count matrix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years := make([]int, 0, len(args))
			for _, arg := range args {
				year, err := fars.ParseYear(arg)
				if err != nil {
					return err
				}
				years = append(years, year)
			}

			a, err := newApp(*dataDir, *plotDir)
			if err != nil {
				return err
			}
			defer a.stop()

			matrix := a.summarizer.Summarize(years)
			renderMatrix(cmd.OutOrStdout(), matrix)
			return nil
		},
	}
}

func newPlotCmd(dataDir, plotDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plot <state> <year>",
		Short: "Render a geographic scatter of one state's accidents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := fars.ParseYear(args[0]) // same integer coercion rules
			if err != nil {
				return fmt.Errorf("invalid state code %q", args[0])
			}
			year, err := fars.ParseYear(args[1])
			if err != nil {
				return err
			}

			a, err := newApp(*dataDir, *plotDir)
			if err != nil {
				return err
			}
			defer a.stop()

			return a.plotter.PlotState(state, year)
		},
	}
}

// newApp loads config, applies flag overrides, and wires the pipeline.
func newApp(dataDir, plotDir string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if plotDir != "" {
		cfg.PlotDir = plotDir
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reader := csvfile.NewReader(logger)
	loader := fars.NewLoader(reader, logger, metrics)
	batch := fars.NewBatchLoader(loader, cfg.DataDir, logger, metrics)
	renderer := geoplot.NewRenderer(cfg.PlotDir, logger)

	a := &app{
		cfg:        cfg,
		logger:     logger,
		batch:      batch,
		summarizer: fars.NewSummarizer(batch, logger, metrics),
		plotter:    fars.NewStatePlotter(loader, renderer, cfg.DataDir, logger, metrics),
	}

	if cfg.MetricsAddr != "" {
		a.srv = httpadapter.NewServer(cfg.MetricsAddr, batch, logger)
		go func() {
			if err := a.srv.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	return a, nil
}

// stop shuts the optional metrics server down.
func (a *app) stop() {
	if a.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(ctx); err != nil {
		a.logger.Error("metrics server shutdown error", "error", err)
	}
}
