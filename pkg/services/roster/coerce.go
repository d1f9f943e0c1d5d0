package roster

import (
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02.01.2006",
	time.RFC3339,
}

// parseMoney strips currency symbols and thousands separators before parsing.
// Unparseable or negative values coerce to 0.
func parseMoney(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	s = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseDate tries the known layouts in order. Unparseable dates coerce to the
// fixed default hire date.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.DefaultHireDate, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return domain.DefaultHireDate, false
}

// orUnknown substitutes the sentinel grouping value for blank attributes.
func orUnknown(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.UnknownGroup
	}
	return s
}
