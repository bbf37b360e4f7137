// Command validate performs integrity checks over a directory of yearly
// accident data files. For each requested year it verifies the file parses,
// that months stay within 1-12, that state codes look like FIPS codes, and
// that every coordinate is either plausible or an explicit unknown sentinel.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data -years 2013,2014,2015
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/fars-summary/internal/adapter/csvfile"
	"github.com/couchcryptid/fars-summary/internal/domain"
	"github.com/couchcryptid/fars-summary/internal/fars"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", ".", "directory holding accident_<year>.csv.bz2 files")
	yearsFlag := flag.String("years", "", "comma-separated years to validate")
	flag.Parse()

	if *yearsFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	years, err := parseYears(*yearsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(*dataDir, years))
}

func run(dataDir string, years []int) int {
	fmt.Println("=== Accident Data Validation ===")
	fmt.Println()

	reader := csvfile.NewReader(slog.New(slog.DiscardHandler))
	failed := false

	for _, year := range years {
		path := filepath.Join(dataDir, fars.Filename(year))
		p := &phase{name: fmt.Sprintf("year %d", year)}

		records, err := reader.ReadFile(path)
		if err != nil {
			p.errorf("load: %v", err)
		} else {
			checkRecords(p, records)
		}

		report(p, len(records))
		if !p.passed() {
			failed = true
		}
	}

	fmt.Println()
	if failed {
		fmt.Println("RESULT: FAIL")
		return 1
	}
	fmt.Println("RESULT: PASS")
	return 0
}

func checkRecords(p *phase, records []domain.Record) {
	if len(records) == 0 {
		p.errorf("no rows")
		return
	}

	sentinels := 0
	for i, rec := range records {
		if rec.Month < 1 || rec.Month > 12 {
			p.errorf("row %d: MONTH %d out of range", i+1, rec.Month)
		}
		// FIPS state codes run 1-56 plus outlying-area codes up to 99.
		if rec.State < 1 || rec.State > 99 {
			p.errorf("row %d: STATE %d is not a plausible code", i+1, rec.State)
		}

		point := domain.NewPoint(rec.Lat, rec.Lon)
		if point.Missing() {
			sentinels++
			continue
		}
		if rec.Lat < -90 || rec.Lon < -180 || rec.Lon > 180 {
			p.errorf("row %d: coordinates (%.4f, %.4f) out of range", i+1, rec.Lat, rec.Lon)
		}
	}

	// A file where most coordinates are unknown usually means a column
	// mismatch rather than bad GPS coverage.
	if sentinels*2 > len(records) {
		p.errorf("%d of %d rows have sentinel coordinates", sentinels, len(records))
	}
}

func report(p *phase, rows int) {
	if p.passed() {
		fmt.Printf("PASS  %s (%d rows)\n", p.name, rows)
		return
	}
	fmt.Printf("FAIL  %s\n", p.name)
	for _, msg := range p.errors {
		fmt.Printf("      - %s\n", msg)
	}
}

func parseYears(spec string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(spec, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse -years %q: %w", part, err)
		}
		years = append(years, year)
	}
	return years, nil
}
