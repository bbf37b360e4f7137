package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/couchcryptid/fars-summary/internal/domain"
)

// renderMatrix prints the summary matrix as a text table: months as rows,
// years as columns. A cell without data shows "." to keep absence distinct
// from a zero count.
func renderMatrix(w io.Writer, matrix *domain.SummaryMatrix) {
	if matrix.Empty() {
		fmt.Fprintln(w, "no data loaded for the requested years")
		return
	}

	years := matrix.Years()

	header := make([]string, 0, len(years)+1)
	header = append(header, "MONTH")
	for _, year := range years {
		header = append(header, strconv.Itoa(year))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)

	for _, month := range matrix.Months() {
		row := make([]string, 0, len(years)+1)
		row = append(row, strconv.Itoa(month))
		for _, year := range years {
			if count, ok := matrix.Count(month, year); ok {
				row = append(row, strconv.Itoa(count))
			} else {
				row = append(row, ".")
			}
		}
		table.Append(row)
	}

	table.Render()
}
