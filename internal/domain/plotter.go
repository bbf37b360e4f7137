package domain

// MapRenderer produces a base map surface covering the given coordinate
// bounds. The name identifies the rendered output.
type MapRenderer interface {
	NewMap(name string, bounds Bounds) (MapCanvas, error)
}

// MapCanvas is a base map surface that accepts coordinate overlays.
type MapCanvas interface {
	// PlotPoints overlays the given coordinate pairs. Points with a missing
	// coordinate are not drawn.
	PlotPoints(points []Point) error

	// Save finalizes the rendered surface.
	Save() error
}
