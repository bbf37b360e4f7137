// Package csvfile reads yearly accident files: bzip2-compressed CSV with
// one row per accident report.
package csvfile

import (
	"compress/bzip2"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/fars-summary/internal/domain"
)

// Reader implements domain.RecordReader for accident extracts. Files ending
// in .bz2 are decompressed transparently; anything else is read as plain CSV.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a Reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// columns holds the index of each consumed column within the header.
type columns struct {
	state int
	month int
	lat   int
	lon   int
}

// ReadFile parses the accident file at path into records. The header must
// contain STATE, MONTH and a coordinate pair; extra columns are ignored.
func (r *Reader) ReadFile(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		src = bzip2.NewReader(f)
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // some extracts pad trailing columns unevenly

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}

	cols, err := mapColumns(path, header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}

	r.logger.Debug("accident file parsed", "path", path, "rows", len(records))
	return records, nil
}

// mapColumns locates the consumed columns in the header. Coordinate headers
// accept both the full and the truncated spelling found in older extracts.
func mapColumns(path string, header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	cols := columns{state: -1, month: -1, lat: -1, lon: -1}
	if i, ok := index["STATE"]; ok {
		cols.state = i
	}
	if i, ok := index["MONTH"]; ok {
		cols.month = i
	}
	for _, name := range []string{"LATITUDE", "LATITUD"} {
		if i, ok := index[name]; ok {
			cols.lat = i
			break
		}
	}
	for _, name := range []string{"LONGITUDE", "LONGITUD"} {
		if i, ok := index[name]; ok {
			cols.lon = i
			break
		}
	}

	switch {
	case cols.state < 0:
		return columns{}, &domain.MissingColumnError{Column: "STATE", Path: path}
	case cols.month < 0:
		return columns{}, &domain.MissingColumnError{Column: "MONTH", Path: path}
	case cols.lat < 0:
		return columns{}, &domain.MissingColumnError{Column: "LATITUDE", Path: path}
	case cols.lon < 0:
		return columns{}, &domain.MissingColumnError{Column: "LONGITUDE", Path: path}
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (domain.Record, error) {
	state, err := intField(row, cols.state, "STATE")
	if err != nil {
		return domain.Record{}, err
	}
	month, err := intField(row, cols.month, "MONTH")
	if err != nil {
		return domain.Record{}, err
	}
	lat, err := floatField(row, cols.lat, "LATITUDE")
	if err != nil {
		return domain.Record{}, err
	}
	lon, err := floatField(row, cols.lon, "LONGITUDE")
	if err != nil {
		return domain.Record{}, err
	}

	return domain.Record{State: state, Month: month, Lat: lat, Lon: lon}, nil
}

func intField(row []string, idx int, name string) (int, error) {
	s, err := field(row, idx, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return v, nil
}

func floatField(row []string, idx int, name string) (float64, error) {
	s, err := field(row, idx, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return v, nil
}

func field(row []string, idx int, name string) (string, error) {
	if idx >= len(row) {
		return "", fmt.Errorf("row too short for column %s", name)
	}
	return strings.TrimSpace(row[idx]), nil
}
