// Package benchmark compares aggregated organization metrics against a
// benchmark policy and emits a ranked list of findings ("quick wins").
package benchmark

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// ErrMissingDefaultTarget is returned when the policy has no "default" entry
// in its variable-compensation targets. This is a configuration error and
// fails the evaluation immediately rather than propagating NaN comparisons
// into findings.
var ErrMissingDefaultTarget = errors.New("benchmark policy: missing \"default\" variable-compensation target")

// Evaluate runs every benchmark rule and returns findings sorted by severity
// (high, medium, low), ties keeping insertion order. Empty inputs yield an
// empty finding list; only a misconfigured policy is an error.
func Evaluate(
	records []domain.EmployeeRecord,
	layers []domain.LayerStat,
	spans []domain.SpanRecord,
	geos []domain.GroupStat,
	policy domain.BenchmarkPolicy,
) ([]domain.Finding, error) {
	if _, ok := policy.TargetVariableRatio[domain.DefaultTargetKey]; !ok {
		return nil, ErrMissingDefaultTarget
	}

	var findings []domain.Finding
	findings = append(findings, spanFindings(spans, policy)...)
	findings = append(findings, layerFindings(layers, policy)...)
	findings = append(findings, compensationFindings(records, policy)...)
	findings = append(findings, locationFindings(geos, policy)...)

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity > findings[j].Severity
	})
	return findings, nil
}

func spanFindings(spans []domain.SpanRecord, policy domain.BenchmarkPolicy) []domain.Finding {
	singles := 0
	narrow := 0
	for _, s := range spans {
		if s.DirectReports == 1 {
			singles++
		} else if s.DirectReports > 1 && s.DirectReports < policy.MinSpan {
			narrow++
		}
	}

	var findings []domain.Finding
	if singles > 0 {
		severity := domain.SeverityMedium
		if singles > 5 {
			severity = domain.SeverityHigh
		}
		findings = append(findings, domain.Finding{
			ID:    "single_report_managers",
			Title: "Managers with a single direct report",
			Description: fmt.Sprintf(
				"%d manager(s) have exactly one direct report. Flattening these chains removes a handoff layer at no structural cost.",
				singles),
			Severity: severity,
			Category: domain.CategorySpans,
			Metric:   fmt.Sprintf("%d managers", singles),
		})
	}
	if narrow > 3 {
		findings = append(findings, domain.Finding{
			ID:    "narrow_spans",
			Title: "Narrow spans of control",
			Description: fmt.Sprintf(
				"%d manager(s) run fewer than %d direct reports. Consolidating teams would widen spans toward the benchmark range.",
				narrow, policy.MinSpan),
			Severity: domain.SeverityMedium,
			Category: domain.CategorySpans,
			Metric:   fmt.Sprintf("%d managers", narrow),
		})
	}
	return findings
}

func layerFindings(layers []domain.LayerStat, policy domain.BenchmarkPolicy) []domain.Finding {
	if len(layers) == 0 {
		return nil
	}
	depth := layers[len(layers)-1].Layer + 1
	if depth <= policy.MaxLayers {
		return nil
	}
	excess := depth - policy.MaxLayers
	return []domain.Finding{{
		ID:    "excess_layers",
		Title: "Too many management layers",
		Description: fmt.Sprintf(
			"The organization runs %d layers against a benchmark of %d. Each extra layer slows decisions and adds coordination cost.",
			depth, policy.MaxLayers),
		Severity: domain.SeverityHigh,
		Category: domain.CategoryLayers,
		Metric:   fmt.Sprintf("%d excess layer(s)", excess),
	}}
}

func compensationFindings(records []domain.EmployeeRecord, policy domain.BenchmarkPolicy) []domain.Finding {
	type compAgg struct {
		sumPercent float64
		count      int
	}
	byGroup := make(map[string]*compAgg)
	var order []string
	for _, r := range records {
		agg, ok := byGroup[r.Function]
		if !ok {
			agg = &compAgg{}
			byGroup[r.Function] = agg
			order = append(order, r.Function)
		}
		total := r.BaseSalary + r.VariablePay
		if total > 0 {
			agg.sumPercent += r.VariablePay / total * 100
		}
		agg.count++
	}

	// Group keys are matched case-insensitively: function labels vary in
	// case across rosters, and viper lowercases map keys in policy files.
	targets := make(map[string]float64, len(policy.TargetVariableRatio))
	for k, v := range policy.TargetVariableRatio {
		targets[strings.ToLower(k)] = v
	}

	var findings []domain.Finding
	for _, group := range order {
		agg := byGroup[group]
		if agg.count == 0 {
			continue
		}
		percent := agg.sumPercent / float64(agg.count)
		target, ok := targets[strings.ToLower(group)]
		if !ok {
			target = targets[domain.DefaultTargetKey]
		}
		if percent >= target/2 {
			continue
		}
		severity := domain.SeverityMedium
		if strings.EqualFold(group, policy.HighLeverageGroup) {
			severity = domain.SeverityHigh
		}
		findings = append(findings, domain.Finding{
			ID:    "variable_comp_" + slug(group),
			Title: fmt.Sprintf("Low variable compensation in %s", group),
			Description: fmt.Sprintf(
				"%s averages %.1f%% variable pay against a target of %.0f%%. Shifting fixed pay to variable aligns cost with performance.",
				group, percent, target),
			Severity: severity,
			Category: domain.CategoryCompensation,
			Metric:   fmt.Sprintf("%.1f%% vs %.0f%% target", percent, target),
		})
	}
	return findings
}

func locationFindings(geos []domain.GroupStat, policy domain.BenchmarkPolicy) []domain.Finding {
	if policy.BestCostSavingsRatio <= 0 {
		return nil
	}
	var headcount, bestCost int
	var highCostSpend float64
	for _, g := range geos {
		headcount += g.Headcount
		bestCost += g.Matched
		highCostSpend += g.TotalCost * (1 - g.MatchedPercent/100)
	}
	if headcount == 0 || highCostSpend <= 0 {
		return nil
	}
	bestCostShare := float64(bestCost) / float64(headcount) * 100
	if bestCostShare >= 50 {
		return nil
	}
	savings := highCostSpend * policy.BestCostSavingsRatio
	return []domain.Finding{{
		ID:    "location_mix",
		Title: "High-cost location concentration",
		Description: fmt.Sprintf(
			"Only %.0f%% of headcount sits in best-cost locations. Shifting a portion of high-cost roles could recover part of the run rate.",
			bestCostShare),
		Severity: domain.SeverityMedium,
		Category: domain.CategoryLocation,
		Metric:   fmt.Sprintf("~%.0f potential savings", savings),
	}}
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
