// Package geoplot renders accident coordinate scatters with gonum/plot,
// writing one PNG per map.
package geoplot

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/fars-summary/internal/domain"
)

// minAxisSpan keeps a single-point or degenerate range visible: an axis is
// widened to at least this many degrees.
const minAxisSpan = 0.5

// Renderer implements domain.MapRenderer. Each map is saved as
// <outDir>/<name>.png.
type Renderer struct {
	outDir string
	width  vg.Length
	height vg.Length
	logger *slog.Logger
}

// NewRenderer creates a Renderer writing into outDir.
func NewRenderer(outDir string, logger *slog.Logger) *Renderer {
	return &Renderer{
		outDir: outDir,
		width:  7 * vg.Inch,
		height: 5 * vg.Inch,
		logger: logger,
	}
}

// NewMap builds a base surface with axes fixed to the given bounds.
func (r *Renderer) NewMap(name string, bounds domain.Bounds) (domain.MapCanvas, error) {
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.X.Min, p.X.Max = padRange(bounds.MinLon, bounds.MaxLon)
	p.Y.Min, p.Y.Max = padRange(bounds.MinLat, bounds.MaxLat)

	return &canvas{
		plot:   p,
		path:   filepath.Join(r.outDir, slug(name)+".png"),
		width:  r.width,
		height: r.height,
		logger: r.logger,
	}, nil
}

// padRange widens a degenerate axis range so the plot stays readable.
func padRange(lo, hi float64) (float64, float64) {
	if hi-lo >= minAxisSpan {
		return lo, hi
	}
	mid := (lo + hi) / 2
	return mid - minAxisSpan/2, mid + minAxisSpan/2
}

// slug converts a map name to a safe file stem.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

type canvas struct {
	plot    *plot.Plot
	path    string
	width   vg.Length
	height  vg.Length
	logger  *slog.Logger
	plotted int
}

// PlotPoints overlays a scatter of the given points. Points with a missing
// coordinate are skipped.
func (c *canvas) PlotPoints(points []domain.Point) error {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if pt.Missing() {
			continue
		}
		xys = append(xys, plotter.XY{X: *pt.Lon, Y: *pt.Lat})
	}
	if len(xys) == 0 {
		return nil
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 0x2b, G: 0x4b, B: 0x7a, A: 0xff}

	c.plot.Add(scatter)
	c.plotted += len(xys)
	return nil
}

// Save writes the finished surface to disk.
func (c *canvas) Save() error {
	if err := c.plot.Save(c.width, c.height, c.path); err != nil {
		return fmt.Errorf("save %s: %w", c.path, err)
	}
	c.logger.Debug("map saved", "path", c.path, "points", c.plotted)
	return nil
}
