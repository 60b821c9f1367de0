package analytics

import (
	"sort"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultCohortMonths = 6
	MaxCohortMonths     = 12
)

// Cohorts groups customers (by email) into the month of their first countable
// order and reports, for offsets 0..months-1, the share of the cohort that
// ordered again in that month. Offsets beyond the latest order month are left
// out, so recent cohorts have shorter retention rows.
func Cohorts(orders []models.Order, months int) []models.CohortRow {
	if months < 1 {
		months = DefaultCohortMonths
	}
	if months > MaxCohortMonths {
		months = MaxCohortMonths
	}

	first := make(map[string]int)
	active := make(map[string]map[int]bool)
	latest := -1

	for _, o := range countable(orders) {
		key := emailKey(o.UserEmail)
		if key == "" {
			continue
		}
		idx := monthIndex(o.OrderDate)
		if f, ok := first[key]; !ok || idx < f {
			first[key] = idx
		}
		if active[key] == nil {
			active[key] = make(map[int]bool)
		}
		active[key][idx] = true
		if idx > latest {
			latest = idx
		}
	}

	members := make(map[int][]string)
	for key, idx := range first {
		members[idx] = append(members[idx], key)
	}

	cohortIdx := make([]int, 0, len(members))
	for idx := range members {
		cohortIdx = append(cohortIdx, idx)
	}
	sort.Ints(cohortIdx)

	out := make([]models.CohortRow, 0, len(cohortIdx))
	for _, c := range cohortIdx {
		size := len(members[c])
		retention := make([]float64, 0, months)
		for k := 0; k < months && c+k <= latest; k++ {
			retained := 0
			for _, key := range members[c] {
				if active[key][c+k] {
					retained++
				}
			}
			retention = append(retention, percent(decimal.NewFromInt(int64(retained)), decimal.NewFromInt(int64(size))))
		}
		out = append(out, models.CohortRow{
			Cohort:    monthKey(c),
			Size:      size,
			Retention: retention,
		})
	}
	return out
}
