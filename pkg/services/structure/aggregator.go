// Package structure derives per-layer, per-manager and per-grouping rollups
// from a reconstructed reporting tree. Every aggregation walks its input
// exactly once and mutates nothing.
package structure

import (
	"sort"
	"time"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// GroupKeyFn extracts the grouping key for one record.
type GroupKeyFn func(domain.EmployeeRecord) string

// CostClassifier tags a record as belonging to a cost classification
// (best-cost geography). May be nil when no classification applies.
type CostClassifier func(domain.EmployeeRecord) bool

// ByFunction and ByCountry are the grouping keys used by the analysis façade.
func ByFunction(r domain.EmployeeRecord) string { return r.Function }
func ByCountry(r domain.EmployeeRecord) string  { return r.Country }

// ManagerIDs returns the set of identifiers classified as managers under the
// structural rule: a record is a manager iff at least one other record's
// manager reference resolves to it. The façade and every aggregation share
// this single definition so manager/IC counts never contradict each other.
func ManagerIDs(records []domain.EmployeeRecord) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, r := range records {
		ids[r.ID] = struct{}{}
	}
	managers := make(map[string]struct{})
	for _, r := range records {
		if r.ManagerID == "" || r.ManagerID == r.ID {
			continue
		}
		if _, ok := ids[r.ManagerID]; ok {
			managers[r.ManagerID] = struct{}{}
		}
	}
	return managers
}

// Layers rolls the tree up by depth. The result is sorted ascending by layer
// and covers only nodes reachable from the root. Tenure averages use the
// given reference time.
func Layers(root *domain.HierarchyNode, now time.Time) []domain.LayerStat {
	if root == nil {
		return nil
	}

	byLayer := make(map[int]*domain.LayerStat)
	root.Walk(func(n *domain.HierarchyNode) {
		stat, ok := byLayer[n.Layer]
		if !ok {
			stat = &domain.LayerStat{Layer: n.Layer}
			byLayer[n.Layer] = stat
		}
		stat.Headcount++
		stat.TotalCost += n.Record.FLRR
		stat.AvgTenureYears += n.Record.TenureYears(now)
		if n.DirectReports > 0 {
			stat.Managers++
		} else {
			stat.ICs++
		}
	})

	stats := make([]domain.LayerStat, 0, len(byLayer))
	for _, stat := range byLayer {
		if stat.Headcount > 0 {
			stat.AvgCost = stat.TotalCost / float64(stat.Headcount)
			stat.AvgTenureYears = stat.AvgTenureYears / float64(stat.Headcount)
		}
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Layer < stats[j].Layer })
	return stats
}

// Spans emits one SpanRecord per manager in depth-first preorder, which makes
// the output deterministic for identical input.
func Spans(root *domain.HierarchyNode) []domain.SpanRecord {
	if root == nil {
		return nil
	}
	var spans []domain.SpanRecord
	root.Walk(func(n *domain.HierarchyNode) {
		if n.DirectReports == 0 {
			return
		}
		spans = append(spans, domain.SpanRecord{
			ManagerID:     n.Record.ID,
			Group:         n.Record.Function,
			DirectReports: n.DirectReports,
			Layer:         n.Layer,
		})
	})
	return spans
}

// Groups rolls the record list up by the given key. Keys appear in
// first-appearance order. When classify is non-nil, Matched and
// MatchedPercent report the records the classifier tags.
func Groups(records []domain.EmployeeRecord, key GroupKeyFn, classify CostClassifier) []domain.GroupStat {
	byKey := make(map[string]*domain.GroupStat)
	var order []string
	for _, r := range records {
		k := key(r)
		stat, ok := byKey[k]
		if !ok {
			stat = &domain.GroupStat{Key: k}
			byKey[k] = stat
			order = append(order, k)
		}
		stat.Headcount++
		stat.TotalCost += r.FLRR
		if classify != nil && classify(r) {
			stat.Matched++
		}
	}

	stats := make([]domain.GroupStat, 0, len(order))
	for _, k := range order {
		stat := byKey[k]
		if stat.Headcount > 0 {
			stat.AvgCost = stat.TotalCost / float64(stat.Headcount)
			stat.MatchedPercent = float64(stat.Matched) / float64(stat.Headcount) * 100
		}
		stats = append(stats, *stat)
	}
	return stats
}
