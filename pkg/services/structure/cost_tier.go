package structure

import (
	"strings"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// bestCostCountries is the geography cost-tier table used for relocation
// savings estimates. Countries not listed count as high-cost.
var bestCostCountries = map[string]struct{}{
	"argentina":   {},
	"brazil":      {},
	"bulgaria":    {},
	"colombia":    {},
	"costa rica":  {},
	"egypt":       {},
	"hungary":     {},
	"india":       {},
	"malaysia":    {},
	"mexico":      {},
	"philippines": {},
	"poland":      {},
	"portugal":    {},
	"romania":     {},
	"vietnam":     {},
}

// IsBestCost reports whether the record sits in a best-cost geography.
func IsBestCost(r domain.EmployeeRecord) bool {
	_, ok := bestCostCountries[strings.ToLower(strings.TrimSpace(r.Country))]
	return ok
}
