package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"dataproc/internal/config"
	"dataproc/internal/engine"
	"dataproc/internal/logging"
	"dataproc/internal/report"

	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/spf13/cobra"
)

const sampleSize = 3

type options struct {
	count    int
	manifest string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dataproc",
		Short: "Average sample records and summarise a passenger manifest",
		Long: `Generate a set of sample records and print their mean, then
analyze a passenger manifest CSV and print survival statistics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Init(cfg.Logging, cmd.ErrOrStderr())
			if !cmd.Flags().Changed("count") {
				opts.count = cfg.Data.SampleRecords
			}
			if !cmd.Flags().Changed("manifest") {
				opts.manifest = cfg.Data.ManifestPath
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.PersistentFlags().IntVarP(&opts.count, "count", "n", 1_000_000, "number of sample records to generate")
	rootCmd.PersistentFlags().StringVarP(&opts.manifest, "manifest", "m", "data/titanic.csv", "path to the passenger manifest CSV")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "mean",
			Short: "Generate sample records and print their mean",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMean(cmd.OutOrStdout(), opts.count)
			},
		},
		&cobra.Command{
			Use:   "manifest [path]",
			Short: "Analyze a passenger manifest CSV",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := opts.manifest
				if len(args) == 1 {
					path = args[0]
				}
				return runManifest(cmd.OutOrStdout(), path)
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Run the record mean and the manifest analysis",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAll(cmd.OutOrStdout(), opts)
			},
		},
	)

	return rootCmd
}

func runMean(w io.Writer, count int) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}
	slog.Debug("Generating sample records", slog.Int("count", count))
	summary := engine.Summarize(memory.NewGoAllocator(), count, sampleSize)
	slog.Debug("Sample records averaged",
		slog.Int("count", summary.Count),
		slog.Float64("mean", summary.Mean),
		slog.Duration("elapsed", summary.Elapsed))
	return report.WriteRecordSummary(w, summary)
}

func runManifest(w io.Writer, path string) error {
	start := time.Now()
	slog.Debug("Analyzing manifest", slog.String("path", path))
	stats, err := engine.AnalyzeFile(path)
	if err != nil {
		slog.Debug("Manifest analysis failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("processing failed: %w", err)
	}
	slog.Debug("Manifest analyzed",
		slog.Int("total", int(stats.TotalPassengers)),
		slog.Duration("elapsed", time.Since(start)))
	return report.WriteStatistics(w, *stats)
}

func runAll(w io.Writer, opts *options) error {
	if err := report.WriteBanner(w, "High-Performance Data Processing"); err != nil {
		return err
	}
	if err := runMean(w, opts.count); err != nil {
		return err
	}
	return runManifest(w, opts.manifest)
}
