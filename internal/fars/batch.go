package fars

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/couchcryptid/fars-summary/internal/domain"
	"github.com/couchcryptid/fars-summary/internal/observability"
)

// BatchLoader loads a set of reporting years, isolating per-year failures:
// one bad year never aborts the batch.
type BatchLoader struct {
	loader  *Loader
	dataDir string
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// NewBatchLoader creates a BatchLoader resolving year files inside dataDir.
func NewBatchLoader(loader *Loader, dataDir string, logger *slog.Logger, metrics *observability.Metrics) *BatchLoader {
	return &BatchLoader{
		loader:  loader,
		dataDir: dataDir,
		logger:  logger,
		metrics: metrics,
	}
}

// LoadYears attempts each year exactly once, in input order, and returns one
// result per year in the same order. A failed year is logged as a single
// warning naming the year and surfaces as a slot with a non-nil Err;
// subsequent years still run.
func (b *BatchLoader) LoadYears(years []int) []domain.YearResult {
	results := make([]domain.YearResult, 0, len(years))

	for _, year := range years {
		table, err := b.loadYear(year)
		if err != nil {
			b.logger.Warn("invalid year: no data loaded", "year", year, "error", err)
			b.metrics.YearLoadFailures.Inc()
			results = append(results, domain.YearResult{Year: year, Err: err})
			continue
		}

		b.metrics.YearsLoaded.Inc()
		b.ready.Store(true)
		results = append(results, domain.YearResult{Year: year, Table: table})
	}

	return results
}

// loadYear loads one year's file and projects it down to the month column.
func (b *BatchLoader) loadYear(year int) (*domain.YearTable, error) {
	path := filepath.Join(b.dataDir, Filename(year))

	table, err := b.loader.Load(path)
	if err != nil {
		return nil, err
	}

	months := make([]int, len(table.Rows))
	for i, row := range table.Rows {
		months[i] = row.Month
	}
	return &domain.YearTable{Year: year, Months: months}, nil
}

// CheckReadiness returns nil once at least one year has loaded successfully,
// or an error describing why the batch has made no progress yet.
func (b *BatchLoader) CheckReadiness(_ context.Context) error {
	if !b.ready.Load() {
		return errors.New("no year file loaded yet")
	}
	return nil
}
