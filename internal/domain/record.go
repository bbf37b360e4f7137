package domain

import "time"

// Sentinel thresholds used by the source data to encode unknown GPS
// coordinates. Real longitudes never exceed 180 and latitudes never exceed
// 90; the source stores values like 999.9999 / 99.9999 instead of blanks.
const (
	lonUnknownAbove = 900.0
	latUnknownAbove = 90.0
)

// Record is one accident report row, reduced to the columns the pipeline consumes.
type Record struct {
	State int
	Month int     // 1-12
	Lat   float64 // decimal degrees
	Lon   float64 // decimal degrees, negative west
}

// Table is one year file loaded into memory. It is owned by the call that
// produced it; rows are never mutated after loading.
type Table struct {
	Path     string
	Rows     []Record
	LoadedAt time.Time
}

// HasState reports whether any row carries the given state code.
func (t *Table) HasState(state int) bool {
	for _, row := range t.Rows {
		if row.State == state {
			return true
		}
	}
	return false
}

// FilterState returns a copy of the rows matching the given state code, so
// callers can work on the result without touching the loaded table.
func (t *Table) FilterState(state int) []Record {
	var rows []Record
	for _, row := range t.Rows {
		if row.State == state {
			rows = append(rows, row)
		}
	}
	return rows
}

// YearTable is the year-tagged projection of a loaded table: the MONTH value
// of every row, with the reporting year attached as a constant.
type YearTable struct {
	Year   int
	Months []int
}

// YearResult is the outcome of one year's load attempt within a batch.
// A failed year carries its failure reason in Err and a nil Table; callers
// that only care about presence test Err != nil.
type YearResult struct {
	Year  int
	Table *YearTable
	Err   error
}

// Point is a plottable coordinate pair. A nil Lat or Lon means the source
// marked that coordinate unknown.
type Point struct {
	Lon *float64
	Lat *float64
}

// Missing reports whether either coordinate is unknown.
func (p Point) Missing() bool {
	return p.Lat == nil || p.Lon == nil
}

// NewPoint converts raw source coordinates into a Point, replacing the
// unknown sentinels (longitude above 900, latitude above 90) with missing
// values. 179.9 is a real longitude; 901 is not.
func NewPoint(lat, lon float64) Point {
	var p Point
	if lat <= latUnknownAbove {
		p.Lat = &lat
	}
	if lon <= lonUnknownAbove {
		p.Lon = &lon
	}
	return p
}

// Bounds is the axis range covered by a set of points.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// PointBounds computes the bounding box of the points that have both
// coordinates. ok is false when no such point exists.
func PointBounds(points []Point) (bounds Bounds, ok bool) {
	for _, p := range points {
		if p.Missing() {
			continue
		}
		if !ok {
			bounds = Bounds{MinLon: *p.Lon, MaxLon: *p.Lon, MinLat: *p.Lat, MaxLat: *p.Lat}
			ok = true
			continue
		}
		bounds.MinLon = min(bounds.MinLon, *p.Lon)
		bounds.MaxLon = max(bounds.MaxLon, *p.Lon)
		bounds.MinLat = min(bounds.MinLat, *p.Lat)
		bounds.MaxLat = max(bounds.MaxLat, *p.Lat)
	}
	return bounds, ok
}
