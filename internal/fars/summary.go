package fars

import (
	"log/slog"

	"github.com/couchcryptid/fars-summary/internal/domain"
	"github.com/couchcryptid/fars-summary/internal/observability"
)

// Summarizer aggregates year batches into the month-by-year count matrix.
type Summarizer struct {
	batch   *BatchLoader
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewSummarizer creates a Summarizer over the given batch loader.
func NewSummarizer(batch *BatchLoader, logger *slog.Logger, metrics *observability.Metrics) *Summarizer {
	return &Summarizer{
		batch:   batch,
		logger:  logger,
		metrics: metrics,
	}
}

// Summarize loads the given years and pivots the surviving rows into a
// SummaryMatrix. Failed years contribute nothing; when every year fails the
// matrix is empty. The result is a pure function of the underlying files.
func (s *Summarizer) Summarize(years []int) *domain.SummaryMatrix {
	results := s.batch.LoadYears(years)
	matrix := domain.BuildSummary(results)

	s.metrics.SummariesBuilt.Inc()
	s.logger.Debug("summary built",
		"years_requested", len(years),
		"years_loaded", len(matrix.Years()),
		"months", len(matrix.Months()),
	)
	return matrix
}
