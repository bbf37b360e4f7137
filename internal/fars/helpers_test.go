package fars

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-summary/internal/adapter/csvfile"
	"github.com/couchcryptid/fars-summary/internal/domain"
	"github.com/couchcryptid/fars-summary/internal/observability"
)

// writeYearFile writes a bzip2-compressed accident file for year into dir
// using the canonical naming convention, and returns its path.
func writeYearFile(t *testing.T, dir string, year int, rows []domain.Record) string {
	t.Helper()

	path := filepath.Join(dir, Filename(year))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	bw, err := bzip2.NewWriter(f, nil)
	require.NoError(t, err)

	w := csv.NewWriter(bw)
	require.NoError(t, w.Write([]string{"STATE", "MONTH", "LATITUDE", "LONGITUD"}))
	for _, row := range rows {
		require.NoError(t, w.Write([]string{
			strconv.Itoa(row.State),
			strconv.Itoa(row.Month),
			strconv.FormatFloat(row.Lat, 'f', -1, 64),
			strconv.FormatFloat(row.Lon, 'f', -1, 64),
		}))
	}
	w.Flush()
	require.NoError(t, w.Error())
	require.NoError(t, bw.Close())

	return path
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestMetrics() *observability.Metrics {
	return observability.NewMetricsForTesting()
}

// newTestLoader builds a Loader over the real CSV reader with discarded logs.
func newTestLoader() *Loader {
	logger := newDiscardLogger()
	return NewLoader(csvfile.NewReader(logger), logger, newTestMetrics())
}

// writeGarbage writes bytes that are not valid bzip2 data.
func writeGarbage(path string) error {
	return os.WriteFile(path, []byte("this is not a bzip2 stream"), 0o644)
}

// errParse stands in for an arbitrary reader failure.
var errParse = errors.New("malformed accident file")

// failingReader always fails, standing in for a reader hitting bad input.
type failingReader struct {
	err error
}

func (r *failingReader) ReadFile(string) ([]domain.Record, error) {
	return nil, r.err
}

// newCapturedLogger returns a text logger writing into the returned buffer.
func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

// record builds a row with plausible Texas coordinates.
func record(state, month int) domain.Record {
	return domain.Record{State: state, Month: month, Lat: 31.0, Lon: -98.4}
}
