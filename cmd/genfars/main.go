// Command genfars generates mock yearly accident data files for local runs
// and demos. Each requested year becomes an accident_<year>.csv.bz2 in the
// output directory, with rows spread over the requested states and all
// twelve months. A small share of rows carries the source convention's
// unknown-coordinate sentinels (latitude 99.9999, longitude 999.9999).
//
// Output is deterministic for a given seed.
//
// Usage:
//
//	go run ./cmd/genfars -out-dir data -years 2013-2015 -rows 500
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"

	"github.com/couchcryptid/fars-summary/internal/fars"
)

// Continental US bounding box used for synthetic coordinates.
const (
	minLat, maxLat = 25.0, 49.0
	minLon, maxLon = -124.0, -67.0
)

// sentinelShare is the fraction of rows with unknown GPS coordinates.
const sentinelShare = 0.02

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", ".", "output directory for generated files")
	yearsFlag := flag.String("years", "", "years to generate: comma list and/or ranges, e.g. 2013-2015 or 2013,2015")
	statesFlag := flag.String("states", "1,6,12,36,48", "comma-separated state codes to spread rows over")
	rows := flag.Int("rows", 500, "rows per year file")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *yearsFlag == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -years")
	}

	years, err := parseYears(*yearsFlag)
	if err != nil {
		return err
	}
	states, err := parseInts(*statesFlag)
	if err != nil {
		return fmt.Errorf("parse -states: %w", err)
	}
	if len(states) == 0 {
		return fmt.Errorf("-states must name at least one state code")
	}

	rng := rand.New(rand.NewSource(*seed))
	for _, year := range years {
		path := filepath.Join(*outDir, fars.Filename(year))
		if err := writeYear(path, states, *rows, rng); err != nil {
			return fmt.Errorf("generate %d: %w", year, err)
		}
		log.Printf("%s: %d rows", path, *rows)
	}
	return nil
}

func writeYear(path string, states []int, rows int, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return err
	}

	w := csv.NewWriter(bw)
	if err := w.Write([]string{"STATE", "MONTH", "DAY", "LATITUDE", "LONGITUD"}); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		state := states[rng.Intn(len(states))]
		month := 1 + rng.Intn(12)
		day := 1 + rng.Intn(28)

		lat := minLat + rng.Float64()*(maxLat-minLat)
		lon := minLon + rng.Float64()*(maxLon-minLon)
		if rng.Float64() < sentinelShare {
			lat, lon = 99.9999, 999.9999
		}

		err := w.Write([]string{
			strconv.Itoa(state),
			strconv.Itoa(month),
			strconv.Itoa(day),
			strconv.FormatFloat(lat, 'f', 4, 64),
			strconv.FormatFloat(lon, 'f', 4, 64),
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := bw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// parseYears expands a spec like "2013-2015,2018" into a year list.
func parseYears(spec string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("parse -years %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("parse -years %q: %w", part, err)
			}
			if end < start {
				return nil, fmt.Errorf("parse -years %q: descending range", part)
			}
			for y := start; y <= end; y++ {
				years = append(years, y)
			}
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse -years %q: %w", part, err)
		}
		years = append(years, year)
	}
	return years, nil
}

func parseInts(spec string) ([]int, error) {
	var values []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
