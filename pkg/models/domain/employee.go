package domain

import "time"

// UnknownGroup is the sentinel grouping value for records that arrive without a
// function, title, location, country or business unit.
const UnknownGroup = "Unknown"

// DefaultHireDate is substituted by the ingestion layer when a hire date cannot
// be parsed.
var DefaultHireDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// EmployeeRecord is one validated roster row. ManagerID is empty when the
// record reports to nobody. FLRR, BaseSalary and VariablePay are annualized,
// non-negative and finite.
type EmployeeRecord struct {
	ID           string
	ManagerID    string
	Function     string
	Title        string
	Location     string
	Country      string
	BusinessUnit string
	HireDate     time.Time
	FLRR         float64
	BaseSalary   float64
	VariablePay  float64
}

// TenureYears returns wall-clock tenure at the given reference time using a
// 365-day year divisor. Negative tenure (hire date in the future) clamps to 0.
func (r EmployeeRecord) TenureYears(now time.Time) float64 {
	years := now.Sub(r.HireDate).Hours() / 24 / 365
	if years < 0 {
		return 0
	}
	return years
}
