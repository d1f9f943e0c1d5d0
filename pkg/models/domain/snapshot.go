package domain

import "time"

// AnalysisSnapshot is the complete result of one analysis run: the
// reconstructed tree plus every derived view. It is a plain serializable
// value owned by the caller; the core never mutates it after return.
type AnalysisSnapshot struct {
	Root        *HierarchyNode
	Totals      OrgTotals
	Layers      []LayerStat
	Spans       []SpanRecord
	Functions   []GroupStat
	Geographies []GroupStat
	Tenure      []GroupStat
	Findings    []Finding
	GeneratedAt time.Time
}
