package structure

import (
	"time"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// Tenure band labels, in band order. All four bands are always emitted, even
// when empty, so cohort charts keep a stable shape.
var tenureBands = []struct {
	label string
	min   float64 // inclusive
	max   float64 // exclusive, <0 means unbounded
}{
	{"<1y", 0, 1},
	{"1-3y", 1, 3},
	{"3-5y", 3, 5},
	{">=5y", 5, -1},
}

// Tenure buckets records into fixed tenure cohorts relative to the given
// reference time, using a 365-day year divisor.
func Tenure(records []domain.EmployeeRecord, now time.Time) []domain.GroupStat {
	stats := make([]domain.GroupStat, len(tenureBands))
	for i, band := range tenureBands {
		stats[i] = domain.GroupStat{Key: band.label}
	}

	for _, r := range records {
		years := r.TenureYears(now)
		for i, band := range tenureBands {
			if years >= band.min && (band.max < 0 || years < band.max) {
				stats[i].Headcount++
				stats[i].TotalCost += r.FLRR
				break
			}
		}
	}

	for i := range stats {
		if stats[i].Headcount > 0 {
			stats[i].AvgCost = stats[i].TotalCost / float64(stats[i].Headcount)
		}
	}
	return stats
}
