// Package fars is the batch pipeline over yearly accident files: filename
// resolution, single-file loading, multi-year batched loading with per-year
// failure isolation, month-by-year summarization, and state map plotting.
package fars

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/fars-summary/internal/domain"
)

// Filename returns the canonical data file name for a reporting year,
// e.g. Filename(2015) == "accident_2015.csv.bz2".
func Filename(year int) string {
	return fmt.Sprintf("accident_%d.csv.bz2", year)
}

// ParseYear coerces a command-line argument to a reporting year. Integer
// input is taken as-is; decimal input truncates toward zero ("2015.7"
// becomes 2015), matching integer coercion rather than rounding. Anything
// else fails with an InvalidYearError.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if year, err := strconv.Atoi(s); err == nil {
		return year, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f), nil
	}
	return 0, &domain.InvalidYearError{Value: s}
}
