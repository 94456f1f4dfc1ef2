package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit/rules"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan/jmx"
	"github.com/urfave/cli/v3"
)

var applyCmd = &cli.Command{
	Name:  "apply",
	Usage: "Apply a TOML rule file of bulk edits to a test plan",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "rules",
			Usage:    "Path to the TOML rule file",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "plan",
			Aliases: []string{"p"},
			Usage:   "Path to the .jmx test plan file",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Apply the rules in memory and report, but do not save the plan",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the modified plan to this path instead of in-place",
		},
	},
	Suggest: true,
	Action:  applyAction,
}

func applyAction(_ context.Context, cmd *cli.Command) error {
	SetupLogger(cmd)

	path, err := planPath(cmd)
	if err != nil {
		return err
	}

	ruleSet, err := rules.FromFilePath(cmd.String("rules"))
	if err != nil {
		return err
	}

	plan, err := jmx.FromFilePath(path)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	results, err := ruleSet.Apply(plan)
	if err != nil {
		return err
	}

	total := 0
	for i, res := range results {
		printPreview(fmt.Sprintf("Rule %d: %s %q", i, res.Action, res.Pattern), res.Previews)
		total += res.Affected
	}

	if cmd.Bool("dry-run") {
		fmt.Printf("Dry run: %d rule(s) would affect %d element(s)\n", len(results), total)
		return nil
	}

	if err := savePlan(cmd, plan, path); err != nil {
		return err
	}
	fmt.Printf("Successfully applied %d rule(s), %d element(s) affected\n", len(results), total)
	return nil
}
