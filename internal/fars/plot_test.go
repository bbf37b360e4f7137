package fars

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-summary/internal/domain"
)

// fakeRenderer records base map requests and hands out recording canvases.
type fakeRenderer struct {
	names    []string
	bounds   []domain.Bounds
	canvases []*fakeCanvas
	err      error
}

func (r *fakeRenderer) NewMap(name string, bounds domain.Bounds) (domain.MapCanvas, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.names = append(r.names, name)
	r.bounds = append(r.bounds, bounds)
	c := &fakeCanvas{}
	r.canvases = append(r.canvases, c)
	return c, nil
}

type fakeCanvas struct {
	points []domain.Point
	saved  bool
}

func (c *fakeCanvas) PlotPoints(points []domain.Point) error {
	c.points = append(c.points, points...)
	return nil
}

func (c *fakeCanvas) Save() error {
	c.saved = true
	return nil
}

func newTestPlotter(dataDir string, renderer domain.MapRenderer) *StatePlotter {
	return NewStatePlotter(newTestLoader(), renderer, dataDir, newDiscardLogger(), newTestMetrics())
}

func TestPlotState(t *testing.T) {
	t.Run("renders the filtered state", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2015, []domain.Record{
			{State: 48, Month: 1, Lat: 31.02, Lon: -98.44},
			{State: 48, Month: 2, Lat: 32.77, Lon: -96.79},
			{State: 6, Month: 1, Lat: 36.77, Lon: -119.41},
		})
		renderer := &fakeRenderer{}

		err := newTestPlotter(dir, renderer).PlotState(48, 2015)

		require.NoError(t, err)
		require.Len(t, renderer.canvases, 1)
		assert.Contains(t, renderer.names[0], "48")
		assert.Contains(t, renderer.names[0], "2015")

		canvas := renderer.canvases[0]
		assert.Len(t, canvas.points, 2, "other states must be filtered out")
		assert.True(t, canvas.saved)

		assert.Equal(t, domain.Bounds{
			MinLon: -98.44, MaxLon: -96.79,
			MinLat: 31.02, MaxLat: 32.77,
		}, renderer.bounds[0])
	})

	t.Run("missing file propagates", func(t *testing.T) {
		renderer := &fakeRenderer{}

		err := newTestPlotter(t.TempDir(), renderer).PlotState(48, 9999)

		var notFound *domain.FileNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Empty(t, renderer.canvases, "no render on failure")
	})

	t.Run("parse failure propagates", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeGarbage(filepath.Join(dir, Filename(2015))))

		err := newTestPlotter(dir, &fakeRenderer{}).PlotState(48, 2015)
		require.Error(t, err)
	})

	t.Run("unknown state code", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2015, []domain.Record{record(48, 1)})
		renderer := &fakeRenderer{}

		err := newTestPlotter(dir, renderer).PlotState(99, 2015)

		var unknown *domain.UnknownStateError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, 99, unknown.State)
		assert.Contains(t, err.Error(), "99")
		assert.Empty(t, renderer.canvases)
	})

	t.Run("sentinel coordinates excluded from bounds but passed to canvas", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2015, []domain.Record{
			{State: 48, Month: 1, Lat: 31.02, Lon: -98.44},
			{State: 48, Month: 1, Lat: 31.5, Lon: 999.9999}, // unknown longitude
			{State: 48, Month: 1, Lat: 99.9999, Lon: -97.0}, // unknown latitude
		})
		renderer := &fakeRenderer{}

		err := newTestPlotter(dir, renderer).PlotState(48, 2015)

		require.NoError(t, err)
		require.Len(t, renderer.bounds, 1)
		assert.Equal(t, domain.Bounds{
			MinLon: -98.44, MaxLon: -98.44,
			MinLat: 31.02, MaxLat: 31.02,
		}, renderer.bounds[0], "sentinel rows must not stretch the axis range")

		// All rows reach the canvas; the missing ones are simply not drawn.
		canvas := renderer.canvases[0]
		require.Len(t, canvas.points, 3)
		assert.False(t, canvas.points[0].Missing())
		assert.True(t, canvas.points[1].Missing())
		assert.True(t, canvas.points[2].Missing())
	})

	t.Run("all coordinates unknown renders nothing", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2015, []domain.Record{
			{State: 48, Month: 1, Lat: 99.9999, Lon: 999.9999},
		})
		renderer := &fakeRenderer{}
		logger, buf := newCapturedLogger()
		plotter := NewStatePlotter(newTestLoader(), renderer, dir, logger, newTestMetrics())

		err := plotter.PlotState(48, 2015)

		require.NoError(t, err)
		assert.Empty(t, renderer.canvases, "no base map without usable coordinates")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.NotContains(t, buf.String(), "level=WARN")
	})

	t.Run("renderer failure surfaces", func(t *testing.T) {
		dir := t.TempDir()
		writeYearFile(t, dir, 2015, []domain.Record{record(48, 1)})
		renderer := &fakeRenderer{err: errors.New("no display")}

		err := newTestPlotter(dir, renderer).PlotState(48, 2015)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "render base map")
	})
}
