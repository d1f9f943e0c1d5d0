package domain

// LayerStat is the per-depth rollup over nodes reachable from the root.
type LayerStat struct {
	Layer          int
	Headcount      int
	TotalCost      float64
	AvgCost        float64
	Managers       int
	ICs            int
	AvgTenureYears float64
}

// SpanRecord describes one manager's span of control. Group carries the
// manager's function so span findings can be attributed.
type SpanRecord struct {
	ManagerID     string
	Group         string
	DirectReports int
	Layer         int
}

// GroupStat is a per-key rollup (function, geography or tenure band). Matched
// and MatchedPercent are populated only when a cost classification applies.
type GroupStat struct {
	Key            string
	Headcount      int
	TotalCost      float64
	AvgCost        float64
	Matched        int
	MatchedPercent float64
}

// OrgTotals are the cross-cutting organization totals assembled by the
// analysis façade. Manager/IC counts follow the structural rule: a record is a
// manager iff at least one other record's manager reference resolves to it.
type OrgTotals struct {
	Headcount        int
	TotalCost        float64
	AvgCost          float64
	AvgSpan          float64
	Managers         int
	ICs              int
	ManagerPercent   float64
	ManagerToICRatio float64
	RootSpan         int
}
