package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	snapexport "github.com/de-tools/org-atlas/pkg/export"
	"github.com/de-tools/org-atlas/pkg/models/domain"
	"github.com/de-tools/org-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/org-atlas/pkg/services/analysis"
	"github.com/de-tools/org-atlas/pkg/services/benchmark"
	"github.com/de-tools/org-atlas/pkg/services/roster"
)

type AnalyzeCmd struct {
	rosterPath string
	policyPath string
	format     string
	reporter   *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an organization roster",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.rosterPath, "roster", "", "Path to the roster CSV file")
	cmd.Flags().StringVar(&ac.policyPath, "policy", "", "Path to a benchmark policy file (yaml/toml/json)")
	cmd.Flags().StringVar(&ac.format, "format", "text", "Output format: text or json")

	_ = cmd.MarkFlagRequired("roster")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	result, err := roster.Load(ac.rosterPath, roster.ColumnMapping{})
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	policy := domain.DefaultPolicy()
	if ac.policyPath != "" {
		policy, err = benchmark.LoadPolicy(ac.policyPath)
		if err != nil {
			return err
		}
	}

	analyzer := analysis.NewAnalyzer(time.Now().UTC())
	snapshot, err := analyzer.Analyze(result.Records, policy)
	if err != nil {
		return err
	}

	if ac.format == "json" {
		return snapexport.NewExporter().WriteJSON(cmd.OutOrStdout(), snapshot)
	}
	return ac.reporter.Handle(snapshot)
}
