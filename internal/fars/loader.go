package fars

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/fars-summary/internal/domain"
	"github.com/couchcryptid/fars-summary/internal/observability"
)

// Loader reads one year file into a Table.
type Loader struct {
	reader  domain.RecordReader
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader delegating parsing to the given reader.
func NewLoader(reader domain.RecordReader, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{
		reader:  reader,
		logger:  logger,
		metrics: metrics,
	}
}

// Load reads the accident file at path. A missing file is a
// FileNotFoundError naming the path; errors from the underlying reader
// propagate unmodified.
func (l *Loader) Load(path string) (*domain.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	start := time.Now()
	rows, err := l.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	l.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	l.metrics.RecordsLoaded.Add(float64(len(rows)))
	l.logger.Debug("year file loaded", "path", path, "rows", len(rows))

	return &domain.Table{
		Path:     path,
		Rows:     rows,
		LoadedAt: domain.Now(),
	}, nil
}
