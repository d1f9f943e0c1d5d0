// Package roster turns spreadsheet-shaped CSV input into validated employee
// records. Input-quality problems never fail a load; they are reported as
// warnings alongside the records so callers can surface them before analysis.
package roster

import "strings"

// ColumnMapping binds canonical record fields to CSV header names. Empty
// entries mean the field is absent from the file.
type ColumnMapping struct {
	ID           string
	ManagerID    string
	Function     string
	Title        string
	Location     string
	Country      string
	BusinessUnit string
	HireDate     string
	FLRR         string
	BaseSalary   string
	VariablePay  string
}

// header aliases, matched case-insensitively after trimming.
var headerAliases = map[string][]string{
	"id":           {"id", "employee id", "employee_id", "emp id", "employee"},
	"manager":      {"manager", "manager id", "manager_id", "reports to", "reports_to", "supervisor"},
	"function":     {"function", "department", "dept", "org"},
	"title":        {"title", "job title", "job_title", "role"},
	"location":     {"location", "city", "office", "site"},
	"country":      {"country", "geo", "geography"},
	"businessunit": {"business unit", "business_unit", "bu", "division"},
	"hiredate":     {"hire date", "hire_date", "start date", "start_date", "hired"},
	"flrr":         {"flrr", "cost", "total cost", "total_cost", "run rate", "run_rate", "loaded cost"},
	"base":         {"base salary", "base_salary", "base", "salary"},
	"variable":     {"variable pay", "variable_pay", "bonus", "variable", "incentive"},
}

// AutoDetect maps canonical fields onto the given headers using
// case-insensitive name heuristics. Unmatched fields stay empty.
func AutoDetect(headers []string) ColumnMapping {
	match := func(field string) string {
		for _, h := range headers {
			norm := strings.ToLower(strings.TrimSpace(h))
			for _, alias := range headerAliases[field] {
				if norm == alias {
					return h
				}
			}
		}
		return ""
	}

	return ColumnMapping{
		ID:           match("id"),
		ManagerID:    match("manager"),
		Function:     match("function"),
		Title:        match("title"),
		Location:     match("location"),
		Country:      match("country"),
		BusinessUnit: match("businessunit"),
		HireDate:     match("hiredate"),
		FLRR:         match("flrr"),
		BaseSalary:   match("base"),
		VariablePay:  match("variable"),
	}
}
