// Package export serializes an analysis snapshot subset (totals, findings,
// layer and group stats) to portable formats for downstream consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/de-tools/org-atlas/pkg/adapters"
	"github.com/de-tools/org-atlas/pkg/models/domain"
)

type Exporter struct {
	Pretty bool
}

func NewExporter() *Exporter {
	return &Exporter{Pretty: true}
}

// WriteJSON writes the full snapshot in its API shape.
func (e *Exporter) WriteJSON(w io.Writer, snapshot *domain.AnalysisSnapshot) error {
	enc := json.NewEncoder(w)
	if e.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(adapters.MapSnapshotDomainToApi(snapshot))
}

// WriteFindingsCSV writes findings as a CSV table, one row per finding in
// snapshot order.
func (e *Exporter) WriteFindingsCSV(w io.Writer, findings []domain.Finding) (retErr error) {
	cw := csv.NewWriter(w)
	defer func() {
		cw.Flush()
		if err := cw.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("csv flush failed: %w", err)
		}
	}()

	if err := cw.Write([]string{"ID", "Severity", "Category", "Title", "Metric", "Description"}); err != nil {
		return fmt.Errorf("failed to write findings header: %w", err)
	}
	for _, f := range findings {
		row := []string{f.ID, f.Severity.String(), f.Category, f.Title, f.Metric, f.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write finding %s: %w", f.ID, err)
		}
	}
	return nil
}

// WriteLayersCSV writes the per-layer rollup as a CSV table, ascending by
// layer.
func (e *Exporter) WriteLayersCSV(w io.Writer, layers []domain.LayerStat) (retErr error) {
	cw := csv.NewWriter(w)
	defer func() {
		cw.Flush()
		if err := cw.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("csv flush failed: %w", err)
		}
	}()

	if err := cw.Write([]string{"Layer", "Headcount", "Managers", "ICs", "TotalCost", "AvgCost", "AvgTenureYears"}); err != nil {
		return fmt.Errorf("failed to write layers header: %w", err)
	}
	for _, l := range layers {
		row := []string{
			strconv.Itoa(l.Layer),
			strconv.Itoa(l.Headcount),
			strconv.Itoa(l.Managers),
			strconv.Itoa(l.ICs),
			strconv.FormatFloat(l.TotalCost, 'f', 2, 64),
			strconv.FormatFloat(l.AvgCost, 'f', 2, 64),
			strconv.FormatFloat(l.AvgTenureYears, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write layer %d: %w", l.Layer, err)
		}
	}
	return nil
}
