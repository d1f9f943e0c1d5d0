package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

func TestEvaluate_MissingDefaultTargetFailsFast(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.TargetVariableRatio = map[string]float64{"Sales": 40}

	findings, err := Evaluate(nil, nil, nil, nil, policy)
	assert.Nil(t, findings)
	assert.ErrorIs(t, err, ErrMissingDefaultTarget)
}

func TestEvaluate_EmptyInputsYieldNoFindings(t *testing.T) {
	findings, err := Evaluate(nil, nil, nil, nil, domain.DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestEvaluate_SingleReportManager(t *testing.T) {
	// One manager with exactly one direct report and nothing else wrong:
	// exactly one medium finding in the spans category.
	records := []domain.EmployeeRecord{
		{ID: "A", Function: "Engineering", BaseSalary: 80000, VariablePay: 20000},
		{ID: "B", ManagerID: "A", Function: "Engineering", BaseSalary: 80000, VariablePay: 20000},
	}
	layers := []domain.LayerStat{{Layer: 0, Headcount: 1}, {Layer: 1, Headcount: 1}}
	spans := []domain.SpanRecord{{ManagerID: "A", Group: "Engineering", DirectReports: 1, Layer: 0}}

	findings, err := Evaluate(records, layers, spans, nil, domain.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "single_report_managers", findings[0].ID)
	assert.Equal(t, domain.CategorySpans, findings[0].Category)
	assert.Equal(t, domain.SeverityMedium, findings[0].Severity)
}

func TestEvaluate_ManySingleReportManagersEscalate(t *testing.T) {
	var spans []domain.SpanRecord
	for i := 0; i < 6; i++ {
		spans = append(spans, domain.SpanRecord{ManagerID: string(rune('A' + i)), DirectReports: 1})
	}

	findings, err := Evaluate(nil, nil, spans, nil, domain.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
}

func TestEvaluate_NarrowSpansNeedMoreThanThree(t *testing.T) {
	policy := domain.DefaultPolicy() // MinSpan 5

	narrow := func(n int) []domain.SpanRecord {
		var spans []domain.SpanRecord
		for i := 0; i < n; i++ {
			spans = append(spans, domain.SpanRecord{ManagerID: string(rune('A' + i)), DirectReports: 3})
		}
		return spans
	}

	t.Run("three narrow managers stay quiet", func(t *testing.T) {
		findings, err := Evaluate(nil, nil, narrow(3), nil, policy)
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("four narrow managers raise one finding", func(t *testing.T) {
		findings, err := Evaluate(nil, nil, narrow(4), nil, policy)
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, "narrow_spans", findings[0].ID)
		assert.Equal(t, domain.SeverityMedium, findings[0].Severity)
	})
}

func TestEvaluate_ExcessLayers(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.MaxLayers = 3

	var layers []domain.LayerStat
	for i := 0; i < 5; i++ {
		layers = append(layers, domain.LayerStat{Layer: i, Headcount: 1})
	}

	findings, err := Evaluate(nil, layers, nil, nil, policy)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "excess_layers", findings[0].ID)
	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
	assert.Equal(t, domain.CategoryLayers, findings[0].Category)
	assert.Contains(t, findings[0].Metric, "2")
}

func TestEvaluate_CompensationShortfall(t *testing.T) {
	// Group G averages about 1.1% variable pay against a 15% default target;
	// well under the 7.5% trigger line.
	policy := domain.DefaultPolicy()
	policy.TargetVariableRatio = map[string]float64{domain.DefaultTargetKey: 15}
	policy.HighLeverageGroup = "Sales"

	records := []domain.EmployeeRecord{
		{ID: "1", Function: "G", BaseSalary: 90000, VariablePay: 1000},
	}

	findings, err := Evaluate(records, nil, nil, nil, policy)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "variable_comp_g", findings[0].ID)
	assert.Equal(t, domain.CategoryCompensation, findings[0].Category)
	assert.Equal(t, domain.SeverityMedium, findings[0].Severity)
}

func TestEvaluate_CompensationHighLeverageGroup(t *testing.T) {
	policy := domain.DefaultPolicy()
	records := []domain.EmployeeRecord{
		{ID: "1", Function: "Sales", BaseSalary: 100000, VariablePay: 0},
	}

	findings, err := Evaluate(records, nil, nil, nil, policy)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
}

func TestEvaluate_ZeroCompensationCountsAsZeroPercent(t *testing.T) {
	records := []domain.EmployeeRecord{
		{ID: "1", Function: "Ops", BaseSalary: 0, VariablePay: 0},
	}

	findings, err := Evaluate(records, nil, nil, nil, domain.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.CategoryCompensation, findings[0].Category)
}

func TestEvaluate_LocationMix(t *testing.T) {
	policy := domain.DefaultPolicy()
	geos := []domain.GroupStat{
		{Key: "USA", Headcount: 8, TotalCost: 1600000, Matched: 0, MatchedPercent: 0},
		{Key: "India", Headcount: 2, TotalCost: 100000, Matched: 2, MatchedPercent: 100},
	}

	findings, err := Evaluate(nil, nil, nil, geos, policy)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "location_mix", findings[0].ID)
	assert.Equal(t, domain.CategoryLocation, findings[0].Category)

	t.Run("mostly best-cost stays quiet", func(t *testing.T) {
		quiet := []domain.GroupStat{
			{Key: "India", Headcount: 9, TotalCost: 450000, Matched: 9, MatchedPercent: 100},
			{Key: "USA", Headcount: 1, TotalCost: 200000, Matched: 0, MatchedPercent: 0},
		}
		findings, err := Evaluate(nil, nil, nil, quiet, policy)
		require.NoError(t, err)
		assert.Empty(t, findings)
	})
}

func TestEvaluate_SeverityOrderingIsStable(t *testing.T) {
	// A medium span finding is inserted before the high layer finding, but
	// highs must surface first; mediums keep insertion order between them.
	policy := domain.DefaultPolicy()
	policy.MaxLayers = 1

	spans := []domain.SpanRecord{{ManagerID: "A", DirectReports: 1}}
	layers := []domain.LayerStat{{Layer: 0, Headcount: 1}, {Layer: 1, Headcount: 1}}
	records := []domain.EmployeeRecord{
		{ID: "1", Function: "Ops", BaseSalary: 100000, VariablePay: 0},
	}

	findings, err := Evaluate(records, layers, spans, nil, policy)
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, "excess_layers", findings[0].ID)
	assert.Equal(t, domain.SeverityHigh, findings[0].Severity)
	assert.Equal(t, "single_report_managers", findings[1].ID)
	assert.Equal(t, "variable_comp_ops", findings[2].ID)
}
