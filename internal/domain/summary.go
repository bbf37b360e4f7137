package domain

import "sort"

// SummaryMatrix is the month-by-year accident count pivot. Months are rows,
// ascending; contributing years are columns in first-appearance order. A
// (month, year) cell that saw no rows holds no value, which is distinct from
// a zero count. Recomputed on every call, never persisted.
type SummaryMatrix struct {
	months []int
	years  []int
	counts map[monthYear]int
}

type monthYear struct {
	month int
	year  int
}

// BuildSummary pivots a batch of year results into a SummaryMatrix. Failed
// slots contribute nothing; duplicate successful years fold into a single
// column with combined counts. An input where every slot failed produces an
// empty matrix.
func BuildSummary(results []YearResult) *SummaryMatrix {
	m := &SummaryMatrix{counts: make(map[monthYear]int)}
	seenYears := make(map[int]bool)
	seenMonths := make(map[int]bool)

	for _, res := range results {
		if res.Err != nil || res.Table == nil {
			continue
		}
		if !seenYears[res.Table.Year] {
			seenYears[res.Table.Year] = true
			m.years = append(m.years, res.Table.Year)
		}
		for _, month := range res.Table.Months {
			if !seenMonths[month] {
				seenMonths[month] = true
				m.months = append(m.months, month)
			}
			m.counts[monthYear{month: month, year: res.Table.Year}]++
		}
	}

	sort.Ints(m.months)
	return m
}

// Months returns the observed months in ascending order.
func (m *SummaryMatrix) Months() []int {
	return append([]int(nil), m.months...)
}

// Years returns the contributing years in first-appearance order.
func (m *SummaryMatrix) Years() []int {
	return append([]int(nil), m.years...)
}

// Count returns the number of accidents for a (month, year) cell. ok is
// false when that combination contributed no rows.
func (m *SummaryMatrix) Count(month, year int) (count int, ok bool) {
	count, ok = m.counts[monthYear{month: month, year: year}]
	return count, ok
}

// Empty reports whether no year contributed any rows.
func (m *SummaryMatrix) Empty() bool {
	return len(m.counts) == 0
}
