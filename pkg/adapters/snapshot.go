package adapters

import (
	"github.com/de-tools/org-atlas/pkg/models/api"
	"github.com/de-tools/org-atlas/pkg/models/domain"
	"github.com/de-tools/org-atlas/pkg/services/roster"
)

func MapTotalsDomainToApi(t domain.OrgTotals) api.Totals {
	return api.Totals{
		Headcount:        t.Headcount,
		TotalCost:        t.TotalCost,
		AvgCost:          t.AvgCost,
		AvgSpan:          t.AvgSpan,
		Managers:         t.Managers,
		ICs:              t.ICs,
		ManagerPercent:   t.ManagerPercent,
		ManagerToICRatio: t.ManagerToICRatio,
		RootSpan:         t.RootSpan,
	}
}

func MapLayerStatDomainToApi(s domain.LayerStat) api.LayerStat {
	return api.LayerStat{
		Layer:          s.Layer,
		Headcount:      s.Headcount,
		TotalCost:      s.TotalCost,
		AvgCost:        s.AvgCost,
		Managers:       s.Managers,
		ICs:            s.ICs,
		AvgTenureYears: s.AvgTenureYears,
	}
}

func MapSpanRecordDomainToApi(s domain.SpanRecord) api.SpanRecord {
	return api.SpanRecord{
		ManagerID:     s.ManagerID,
		Group:         s.Group,
		DirectReports: s.DirectReports,
		Layer:         s.Layer,
	}
}

func MapGroupStatDomainToApi(s domain.GroupStat) api.GroupStat {
	return api.GroupStat{
		Key:            s.Key,
		Headcount:      s.Headcount,
		TotalCost:      s.TotalCost,
		AvgCost:        s.AvgCost,
		Matched:        s.Matched,
		MatchedPercent: s.MatchedPercent,
	}
}

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	return api.Finding{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Severity:    f.Severity.String(),
		Category:    f.Category,
		Metric:      f.Metric,
	}
}

func MapTreeDomainToApi(n *domain.HierarchyNode) *api.TreeNode {
	if n == nil {
		return nil
	}
	node := &api.TreeNode{
		ID:            n.Record.ID,
		Title:         n.Record.Title,
		Function:      n.Record.Function,
		Layer:         n.Layer,
		DirectReports: n.DirectReports,
	}
	for _, c := range n.Children {
		node.Children = append(node.Children, *MapTreeDomainToApi(c))
	}
	return node
}

func MapSnapshotDomainToApi(s *domain.AnalysisSnapshot) api.Snapshot {
	res := api.Snapshot{
		GeneratedAt: s.GeneratedAt,
		Totals:      MapTotalsDomainToApi(s.Totals),
		Layers:      make([]api.LayerStat, 0, len(s.Layers)),
		Functions:   make([]api.GroupStat, 0, len(s.Functions)),
		Geographies: make([]api.GroupStat, 0, len(s.Geographies)),
		Tenure:      make([]api.GroupStat, 0, len(s.Tenure)),
		Findings:    make([]api.Finding, 0, len(s.Findings)),
		Tree:        MapTreeDomainToApi(s.Root),
	}
	for _, l := range s.Layers {
		res.Layers = append(res.Layers, MapLayerStatDomainToApi(l))
	}
	for _, sp := range s.Spans {
		res.Spans = append(res.Spans, MapSpanRecordDomainToApi(sp))
	}
	for _, g := range s.Functions {
		res.Functions = append(res.Functions, MapGroupStatDomainToApi(g))
	}
	for _, g := range s.Geographies {
		res.Geographies = append(res.Geographies, MapGroupStatDomainToApi(g))
	}
	for _, g := range s.Tenure {
		res.Tenure = append(res.Tenure, MapGroupStatDomainToApi(g))
	}
	for _, f := range s.Findings {
		res.Findings = append(res.Findings, MapFindingDomainToApi(f))
	}
	return res
}

func MapWarningRosterToApi(w roster.Warning) api.Warning {
	return api.Warning{Row: w.Row, Field: w.Field, Message: w.Message}
}
