package api

import "time"

type Totals struct {
	Headcount        int     `json:"headcount"`
	TotalCost        float64 `json:"total_cost"`
	AvgCost          float64 `json:"avg_cost"`
	AvgSpan          float64 `json:"avg_span"`
	Managers         int     `json:"managers"`
	ICs              int     `json:"ics"`
	ManagerPercent   float64 `json:"manager_percent"`
	ManagerToICRatio float64 `json:"manager_to_ic_ratio"`
	RootSpan         int     `json:"root_span"`
}

type LayerStat struct {
	Layer          int     `json:"layer"`
	Headcount      int     `json:"headcount"`
	TotalCost      float64 `json:"total_cost"`
	AvgCost        float64 `json:"avg_cost"`
	Managers       int     `json:"managers"`
	ICs            int     `json:"ics"`
	AvgTenureYears float64 `json:"avg_tenure_years"`
}

type SpanRecord struct {
	ManagerID     string `json:"manager_id"`
	Group         string `json:"group"`
	DirectReports int    `json:"direct_reports"`
	Layer         int    `json:"layer"`
}

type GroupStat struct {
	Key            string  `json:"key"`
	Headcount      int     `json:"headcount"`
	TotalCost      float64 `json:"total_cost"`
	AvgCost        float64 `json:"avg_cost"`
	Matched        int     `json:"matched,omitempty"`
	MatchedPercent float64 `json:"matched_percent,omitempty"`
}

type Finding struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Metric      string `json:"metric,omitempty"`
}

type TreeNode struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Function      string     `json:"function"`
	Layer         int        `json:"layer"`
	DirectReports int        `json:"direct_reports"`
	Children      []TreeNode `json:"children,omitempty"`
}

type Snapshot struct {
	ID          string       `json:"id,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
	Totals      Totals       `json:"totals"`
	Layers      []LayerStat  `json:"layers"`
	Spans       []SpanRecord `json:"spans,omitempty"`
	Functions   []GroupStat  `json:"functions"`
	Geographies []GroupStat  `json:"geographies"`
	Tenure      []GroupStat  `json:"tenure"`
	Findings    []Finding    `json:"findings"`
	Tree        *TreeNode    `json:"tree,omitempty"`
}

type Warning struct {
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AnalysisSummary is the POST /analyses response: the run handle plus the
// headline numbers and any ingestion warnings.
type AnalysisSummary struct {
	ID       string    `json:"id"`
	Totals   Totals    `json:"totals"`
	Findings int       `json:"findings"`
	Warnings []Warning `json:"warnings,omitempty"`
}
