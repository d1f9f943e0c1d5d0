package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

type TableConfig struct {
	LayerWidth     int
	HeadcountWidth int
	CostWidth      int
	TenureWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LayerWidth:     6,
		HeadcountWidth: 10,
		CostWidth:      14,
		TenureWidth:    10,
	}
}

// Reporter renders an analysis snapshot to the console in a formatted text
// form.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(snapshot *domain.AnalysisSnapshot) error {
	funcMap := template.FuncMap{
		"layerRow": func(layer, headcount, managers, ics int, avgCost, tenure float64) string {
			return fmt.Sprintf("| %-*d | %-*d | %-*d | %-*d | %-*.0f | %-*.1f |",
				c.config.LayerWidth, layer,
				c.config.HeadcountWidth, headcount,
				c.config.HeadcountWidth, managers,
				c.config.HeadcountWidth, ics,
				c.config.CostWidth, avgCost,
				c.config.TenureWidth, tenure)
		},
		"layerHeader": func() string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s | %-*s | %-*s |",
				c.config.LayerWidth, "Layer",
				c.config.HeadcountWidth, "Headcount",
				c.config.HeadcountWidth, "Managers",
				c.config.HeadcountWidth, "ICs",
				c.config.CostWidth, "Avg FLRR",
				c.config.TenureWidth, "Tenure (y)")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.LayerWidth+2),
				strings.Repeat("-", c.config.HeadcountWidth+2),
				strings.Repeat("-", c.config.HeadcountWidth+2),
				strings.Repeat("-", c.config.HeadcountWidth+2),
				strings.Repeat("-", c.config.CostWidth+2),
				strings.Repeat("-", c.config.TenureWidth+2))
		},
	}

	tmpl := `
Organization Analysis ({{.GeneratedAt.Format "2006-01-02"}})

Headcount: {{.Totals.Headcount}} ({{.Totals.Managers}} managers, {{.Totals.ICs}} ICs)
Total FLRR: {{printf "%.2f" .Totals.TotalCost}}
Average span of control: {{printf "%.1f" .Totals.AvgSpan}}

{{separator}}
{{layerHeader}}
{{separator}}
{{range .Layers}}{{layerRow .Layer .Headcount .Managers .ICs .AvgCost .AvgTenureYears}}
{{end}}{{separator}}

=== Quick Wins ===
{{range .Findings}}
[{{.Severity}}] {{.Title}}{{if .Metric}} ({{.Metric}}){{end}}
  {{.Description}}
{{else}}
No findings. The structure sits within the benchmark ranges.
{{end}}
`
	t, err := template.New("snapshot").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, snapshot)
}
