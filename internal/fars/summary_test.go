package fars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-summary/internal/adapter/csvfile"
	"github.com/couchcryptid/fars-summary/internal/domain"
)

func newTestSummarizer(dataDir string) *Summarizer {
	return NewSummarizer(newTestBatch(dataDir), newDiscardLogger(), newTestMetrics())
}

func TestSummarize(t *testing.T) {
	t.Run("two-year aggregation", func(t *testing.T) {
		dir := t.TempDir()
		// Year A: 3 rows in month 1. Year B: 2 rows in month 1, 1 in month 2.
		writeYearFile(t, dir, 2014, []domain.Record{
			record(48, 1), record(6, 1), record(48, 1),
		})
		writeYearFile(t, dir, 2015, []domain.Record{
			record(48, 1), record(48, 1), record(6, 2),
		})

		matrix := newTestSummarizer(dir).Summarize([]int{2014, 2015})

		assert.Equal(t, []int{1, 2}, matrix.Months())
		assert.Equal(t, []int{2014, 2015}, matrix.Years())

		count, ok := matrix.Count(1, 2014)
		require.True(t, ok)
		assert.Equal(t, 3, count)

		count, ok = matrix.Count(1, 2015)
		require.True(t, ok)
		assert.Equal(t, 2, count)

		count, ok = matrix.Count(2, 2015)
		require.True(t, ok)
		assert.Equal(t, 1, count)

		_, ok = matrix.Count(2, 2014)
		assert.False(t, ok, "month 2 has no value for the first year, not a zero")
	})

	t.Run("failed year contributes nothing", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2015, []domain.Record{record(48, 6)})

		matrix := newTestSummarizer(dir).Summarize([]int{2015, 9999})

		assert.Equal(t, []int{2015}, matrix.Years())
		_, ok := matrix.Count(6, 9999)
		assert.False(t, ok)
	})

	t.Run("all years fail", func(t *testing.T) {
		logger, buf := newCapturedLogger()
		loader := NewLoader(csvfile.NewReader(logger), logger, newTestMetrics())
		batch := NewBatchLoader(loader, t.TempDir(), logger, newTestMetrics())
		summarizer := NewSummarizer(batch, logger, newTestMetrics())

		matrix := summarizer.Summarize([]int{8888, 9999})

		assert.True(t, matrix.Empty())
		assert.Equal(t, 2, strings.Count(buf.String(), "level=WARN"))
	})

	t.Run("idempotent over the same files", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2014, []domain.Record{record(48, 1), record(48, 9)})
		writeYearFile(t, dir, 2015, []domain.Record{record(6, 9)})

		s := newTestSummarizer(dir)
		first := s.Summarize([]int{2014, 2015})
		second := s.Summarize([]int{2014, 2015})

		assert.Equal(t, first.Months(), second.Months())
		assert.Equal(t, first.Years(), second.Years())
		for _, month := range first.Months() {
			for _, year := range first.Years() {
				c1, ok1 := first.Count(month, year)
				c2, ok2 := second.Count(month, year)
				assert.Equal(t, ok1, ok2)
				assert.Equal(t, c1, c2)
			}
		}
	})
}
