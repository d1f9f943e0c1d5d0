package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Finding categories.
const (
	CategorySpans        = "spans"
	CategoryLayers       = "layers"
	CategoryCompensation = "compensation"
	CategoryLocation     = "location"
)

// Finding is one prioritized improvement opportunity ("quick win"). Findings
// are pure derived output; nothing downstream of the benchmark engine reads
// them back. The presentation layer renders them top to bottom, so slice order
// is part of the contract: high before medium before low, ties in insertion
// order.
type Finding struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
	Category    string
	Metric      string
}
