package roster

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// Warning is one non-fatal input-quality problem found during a load.
type Warning struct {
	Row     int // 1-based data row, 0 when not row-specific
	Field   string
	Message string
}

func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("row %d: %s: %s", w.Row, w.Field, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// LoadResult carries the validated records plus every warning raised while
// coercing them.
type LoadResult struct {
	Records  []domain.EmployeeRecord
	Warnings []Warning
}

type rawRecord struct {
	ID          string  `validate:"required"`
	FLRR        float64 `validate:"gte=0"`
	BaseSalary  float64 `validate:"gte=0"`
	VariablePay float64 `validate:"gte=0"`
}

var validate = validator.New()

// Load reads a roster CSV from disk. An empty mapping triggers header
// auto-detection.
func Load(path string, mapping ColumnMapping) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()
	return Read(f, mapping)
}

// Read parses roster CSV from the given reader. The first row must be a
// header. Rows missing an identifier are skipped with a warning; everything
// else degrades field by field (money to 0, dates to the default, groupings
// to "Unknown") with a warning per coercion.
func Read(r io.Reader, mapping ColumnMapping) (*LoadResult, error) {
	br := stripBOM(bufio.NewReader(r))
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("roster file has no header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if mapping == (ColumnMapping{}) {
		mapping = AutoDetect(header)
	}
	if mapping.ID == "" {
		return nil, fmt.Errorf("no identifier column found in header %v", header)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || name == "" || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	result := &LoadResult{}
	seen := make(map[string]int)
	rowNum := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum+1, err)
		}
		rowNum++

		id := strings.TrimSpace(field(row, mapping.ID))
		rec := domain.EmployeeRecord{
			ID:           id,
			ManagerID:    strings.TrimSpace(field(row, mapping.ManagerID)),
			Function:     orUnknown(field(row, mapping.Function)),
			Title:        orUnknown(field(row, mapping.Title)),
			Location:     orUnknown(field(row, mapping.Location)),
			Country:      orUnknown(field(row, mapping.Country)),
			BusinessUnit: orUnknown(field(row, mapping.BusinessUnit)),
		}

		var ok bool
		if rec.FLRR, ok = parseMoney(field(row, mapping.FLRR)); !ok {
			result.Warnings = append(result.Warnings, Warning{rowNum, "flrr", "unparseable amount, defaulted to 0"})
		}
		if rec.BaseSalary, ok = parseMoney(field(row, mapping.BaseSalary)); !ok {
			result.Warnings = append(result.Warnings, Warning{rowNum, "base_salary", "unparseable amount, defaulted to 0"})
		}
		if rec.VariablePay, ok = parseMoney(field(row, mapping.VariablePay)); !ok {
			result.Warnings = append(result.Warnings, Warning{rowNum, "variable_pay", "unparseable amount, defaulted to 0"})
		}
		if rec.HireDate, ok = parseDate(field(row, mapping.HireDate)); !ok {
			result.Warnings = append(result.Warnings, Warning{rowNum, "hire_date", "unparseable date, defaulted"})
		}

		if err := validate.Struct(rawRecord{
			ID:          rec.ID,
			FLRR:        rec.FLRR,
			BaseSalary:  rec.BaseSalary,
			VariablePay: rec.VariablePay,
		}); err != nil {
			result.Warnings = append(result.Warnings, Warning{rowNum, "id", "missing identifier, row skipped"})
			continue
		}

		if prev, dup := seen[id]; dup {
			result.Warnings = append(result.Warnings, Warning{
				rowNum, "id",
				fmt.Sprintf("duplicate identifier %q (also row %d); the later row supersedes the earlier", id, prev),
			})
		}
		seen[id] = rowNum
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

func stripBOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
