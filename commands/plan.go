package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cosmichound/multitimer/internal/core/session"
	"github.com/cosmichound/multitimer/internal/data/plan"
	"github.com/cosmichound/multitimer/internal/presentation/formatter"
	"github.com/cosmichound/multitimer/internal/util"
)

var planOutput string

var planCmd = &cobra.Command{
	Use:   "plan [file]",
	Short: "Validate a plan file and print its timers",
	Long: `Loads a plan file (yaml, toml or json), checks every expected time and
prints the resulting sequence without starting it. The file comes from the
argument, --plan or the 'plan' setting, in that order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planOutput, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	planCmd.Flags().StringVar(&planOutput, "format", "",
		"Alias for --output")
}

func runPlan(cmd *cobra.Command, args []string) error {
	path := resolvePlanPath(args)
	if path == "" {
		return fmt.Errorf("no plan file given; pass one as an argument or with --plan")
	}

	// Handle format alias
	if format := cmd.Flags().Lookup("format"); format != nil && format.Changed {
		planOutput = format.Value.String()
	}

	f, err := formatter.New(planOutput, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	p, err := plan.Load(path)
	if err != nil {
		return err
	}

	controller := session.NewController(session.WithDefaultExpected(settings.DefaultExpectedSeconds()))
	controller.Load(p.Build(settings.DefaultExpectedSeconds(), uuid.NewString))

	util.LogInfof("printing plan %s as %s", path, planOutput)
	return f.Format(formatter.NewReport(p.Name, controller))
}
