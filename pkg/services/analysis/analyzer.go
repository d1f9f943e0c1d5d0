// Package analysis orchestrates the hierarchy builder, structural aggregator
// and benchmark engine into one pure entry point.
package analysis

import (
	"fmt"
	"time"

	"github.com/de-tools/org-atlas/pkg/models/domain"
	"github.com/de-tools/org-atlas/pkg/services/benchmark"
	"github.com/de-tools/org-atlas/pkg/services/hierarchy"
	"github.com/de-tools/org-atlas/pkg/services/structure"
)

// Analyzer runs full analysis passes. Now is the injected reference time used
// for tenure math; two analyzers with the same Now produce identical
// snapshots for identical input, so concurrent callers may share nothing and
// still agree.
type Analyzer struct {
	Now time.Time
}

func NewAnalyzer(now time.Time) *Analyzer {
	return &Analyzer{Now: now}
}

// Analyze builds the reporting tree, derives every aggregate view, evaluates
// the benchmark policy and assembles the snapshot. Degenerate input (empty or
// fully disconnected roster) yields a well-formed zero snapshot; only a
// misconfigured policy is an error.
func (a *Analyzer) Analyze(records []domain.EmployeeRecord, policy domain.BenchmarkPolicy) (*domain.AnalysisSnapshot, error) {
	root := hierarchy.Build(records)
	reachable := hierarchy.Reachable(root)

	layers := structure.Layers(root, a.Now)
	spans := structure.Spans(root)
	functions := structure.Groups(reachable, structure.ByFunction, nil)
	geos := structure.Groups(reachable, structure.ByCountry, structure.IsBestCost)
	tenure := structure.Tenure(reachable, a.Now)

	findings, err := benchmark.Evaluate(reachable, layers, spans, geos, policy)
	if err != nil {
		return nil, fmt.Errorf("benchmark evaluation failed: %w", err)
	}

	return &domain.AnalysisSnapshot{
		Root:        root,
		Totals:      totals(reachable, spans, root),
		Layers:      layers,
		Spans:       spans,
		Functions:   functions,
		Geographies: geos,
		Tenure:      tenure,
		Findings:    findings,
		GeneratedAt: a.Now,
	}, nil
}

// AnalyzeWithDefaults runs Analyze under the standard benchmark policy.
func (a *Analyzer) AnalyzeWithDefaults(records []domain.EmployeeRecord) (*domain.AnalysisSnapshot, error) {
	return a.Analyze(records, domain.DefaultPolicy())
}

// totals computes the cross-cutting organization totals over the reachable
// record set, using the same structural manager rule as the aggregator.
func totals(reachable []domain.EmployeeRecord, spans []domain.SpanRecord, root *domain.HierarchyNode) domain.OrgTotals {
	t := domain.OrgTotals{Headcount: len(reachable)}
	for _, r := range reachable {
		t.TotalCost += r.FLRR
	}

	managers := structure.ManagerIDs(reachable)
	t.Managers = len(managers)
	t.ICs = t.Headcount - t.Managers

	if t.Headcount > 0 {
		t.AvgCost = t.TotalCost / float64(t.Headcount)
		t.ManagerPercent = float64(t.Managers) / float64(t.Headcount) * 100
	}
	if t.ICs > 0 {
		t.ManagerToICRatio = float64(t.Managers) / float64(t.ICs)
	}
	if len(spans) > 0 {
		sum := 0
		for _, s := range spans {
			sum += s.DirectReports
		}
		t.AvgSpan = float64(sum) / float64(len(spans))
	}
	if root != nil {
		t.RootSpan = root.DirectReports
	}
	return t
}
