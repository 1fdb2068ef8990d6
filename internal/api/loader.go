package api

import (
	"log/slog"
	"time"

	"dataproc/internal/config"
	"dataproc/internal/engine"

	"github.com/apache/arrow/go/v18/arrow/memory"
)

const summarySampleSize = 3

// Load analyzes the configured manifest and generates the sample records,
// publishing both results on h. A manifest failure is stored for
// GetManifestStats and does not stop the record summary.
func (h *Handler) Load(logger *slog.Logger, cfg config.DataConfig) {
	t0 := time.Now()
	logger.Info("BACKGROUND: analyzing manifest", slog.String("path", cfg.ManifestPath))

	stats, err := engine.AnalyzeFile(cfg.ManifestPath)
	h.SetStats(stats, err)
	if err != nil {
		logger.Error("BACKGROUND: manifest analysis failed", slog.String("error", err.Error()))
	} else {
		logger.Info("BACKGROUND: manifest analyzed",
			slog.Int("total", int(stats.TotalPassengers)),
			slog.Float64("survival_rate", stats.SurvivalRate))
	}

	summary := engine.Summarize(memory.NewGoAllocator(), cfg.SampleRecords, summarySampleSize)
	h.SetSummary(&summary)
	logger.Info("BACKGROUND: load complete",
		slog.Int("records", summary.Count),
		slog.Float64("mean", summary.Mean),
		slog.Duration("elapsed", time.Since(t0)))
}
