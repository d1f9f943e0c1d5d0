package domain

// DefaultTargetKey is the required fallback entry in TargetVariableRatio.
const DefaultTargetKey = "default"

// BenchmarkPolicy configures the benchmark engine. It is always passed
// explicitly; DefaultPolicy is a convenience constructor, not hidden global
// state.
type BenchmarkPolicy struct {
	// MinSpan and MaxSpan bound the healthy span-of-control range.
	MinSpan int
	MaxSpan int
	// MaxLayers is the maximum healthy depth, counted in layers (root = 1).
	MaxLayers int
	// TargetVariableRatio maps a function to its target variable-compensation
	// percent. The "default" entry is mandatory.
	TargetVariableRatio map[string]float64
	// BestCostSavingsRatio is the fraction of high-cost-location spend assumed
	// recoverable by moving work to best-cost locations. In [0,1].
	BestCostSavingsRatio float64
	// HighLeverageGroup is the function whose compensation findings are
	// escalated to high severity.
	HighLeverageGroup string
}

// DefaultPolicy returns the standard benchmark policy.
func DefaultPolicy() BenchmarkPolicy {
	return BenchmarkPolicy{
		MinSpan:   5,
		MaxSpan:   8,
		MaxLayers: 7,
		TargetVariableRatio: map[string]float64{
			DefaultTargetKey: 15,
			"Sales":          40,
			"Engineering":    10,
		},
		BestCostSavingsRatio: 0.4,
		HighLeverageGroup:    "Sales",
	}
}
