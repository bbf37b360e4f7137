package fars

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/couchcryptid/fars-summary/internal/domain"
	"github.com/couchcryptid/fars-summary/internal/observability"
)

// StatePlotter renders a geographic scatter of one state's accidents for one
// reporting year.
type StatePlotter struct {
	loader   *Loader
	renderer domain.MapRenderer
	dataDir  string
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewStatePlotter creates a StatePlotter resolving year files inside dataDir.
func NewStatePlotter(loader *Loader, renderer domain.MapRenderer, dataDir string, logger *slog.Logger, metrics *observability.Metrics) *StatePlotter {
	return &StatePlotter{
		loader:   loader,
		renderer: renderer,
		dataDir:  dataDir,
		logger:   logger,
		metrics:  metrics,
	}
}

// PlotState loads one year, filters it to the given state code and renders
// the accident coordinates. Load failures propagate unmodified. A state code
// absent from the year's data is an UnknownStateError. A state with no rows
// to draw renders nothing and returns nil.
func (p *StatePlotter) PlotState(state, year int) error {
	path := filepath.Join(p.dataDir, Filename(year))
	table, err := p.loader.Load(path)
	if err != nil {
		return err
	}

	if !table.HasState(state) {
		return &domain.UnknownStateError{State: state}
	}

	rows := table.FilterState(state)
	if len(rows) == 0 {
		p.logger.Info("no accidents to plot", "state", state, "year", year)
		return nil
	}

	points := make([]domain.Point, len(rows))
	missing := 0
	for i, row := range rows {
		points[i] = domain.NewPoint(row.Lat, row.Lon)
		if points[i].Missing() {
			missing++
		}
	}
	if missing > 0 {
		p.metrics.PointsMissing.Add(float64(missing))
	}

	bounds, ok := domain.PointBounds(points)
	if !ok {
		p.logger.Info("no accidents with usable coordinates to plot", "state", state, "year", year)
		return nil
	}

	name := fmt.Sprintf("accident map state %d %d", state, year)
	canvas, err := p.renderer.NewMap(name, bounds)
	if err != nil {
		return fmt.Errorf("render base map: %w", err)
	}
	if err := canvas.PlotPoints(points); err != nil {
		return fmt.Errorf("plot points: %w", err)
	}
	if err := canvas.Save(); err != nil {
		return fmt.Errorf("save map: %w", err)
	}

	p.metrics.PlotsRendered.Inc()
	p.logger.Info("state map rendered",
		"state", state,
		"year", year,
		"points", len(points)-missing,
		"missing", missing,
	)
	return nil
}
