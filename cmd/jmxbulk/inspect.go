package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan/jmx"
	"github.com/urfave/cli/v3"
)

var inspectCmd = &cli.Command{
	Name:    "inspect",
	Aliases: []string{"lint"},
	Usage:   "Load and validate a test plan, printing a summary",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the test plan",
		},
		&cli.StringFlag{
			Name:    "plan",
			Aliases: []string{"p"},
			Usage:   "Path to the .jmx test plan file",
		},
	},
	Suggest: true,
	Action:  inspectAction,
}

func inspectAction(_ context.Context, cmd *cli.Command) error {
	SetupLogger(cmd)

	path, err := planPath(cmd)
	if err != nil {
		return err
	}

	plan, err := jmx.FromFilePath(path)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Printf("Test plan %s is valid\n", path)

	if cmd.Bool("tree") {
		fmt.Println(plan)
		return nil
	}

	fmt.Println(renderPlanSummary(path, plan))
	return nil
}

// renderPlanSummary creates a formatted summary string for the plan
func renderPlanSummary(path string, p *testplan.Plan) string {
	s := p.Summarize()

	var summary strings.Builder
	summary.WriteString("\nPlan Summary:\n")
	summary.WriteString(fmt.Sprintf("- Path: %s\n", path))
	summary.WriteString(fmt.Sprintf("- Elements: %d\n", s.Elements))
	summary.WriteString(fmt.Sprintf("- Samplers: %d (%d disabled elements)\n", s.Samplers, s.Disabled))
	summary.WriteString(
		fmt.Sprintf("- Header managers: %d (%d rows)\n", s.HeaderManagers, s.HeaderRows),
	)
	summary.WriteString("\nUse --tree for a more detailed view of the plan.")

	return summary.String()
}
