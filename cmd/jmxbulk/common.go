package main

import (
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit"
	"github.com/atlanticdynamic/jmxbulk/internal/fancy"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan/jmx"
	"github.com/urfave/cli/v3"
)

// planPath resolves the plan file from the --plan flag or the first
// positional argument.
func planPath(cmd *cli.Command) (string, error) {
	if path := cmd.String("plan"); path != "" {
		return path, nil
	}
	if cmd.Args().Len() < 1 {
		return "", fmt.Errorf(
			"plan file path required (use the --plan flag, or provide the plan file as positional argument)",
		)
	}
	return cmd.Args().Get(0), nil
}

// matchFlags returns fresh copies of the flags shared by the matching
// commands.
func matchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "plan",
			Aliases: []string{"p"},
			Usage:   "Path to the .jmx test plan file",
		},
		&cli.StringFlag{
			Name:     "pattern",
			Usage:    "Pattern to match (substring by default, regex with --regex)",
			Required: true,
		},
		&cli.BoolFlag{
			Name:    "regex",
			Aliases: []string{"r"},
			Usage:   "Treat the pattern as a regular expression",
		},
		&cli.BoolFlag{
			Name:  "case-sensitive",
			Usage: "Match case sensitively",
		},
		&cli.BoolFlag{
			Name:  "invert",
			Usage: "Apply to elements that do NOT match the pattern",
		},
		&cli.StringSliceFlag{
			Name:  "scope",
			Usage: "Limit the edit to the subtree(s) of the named plan node (repeatable)",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Preview the matches without modifying the plan",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the modified plan to this path instead of in-place",
		},
	}
}

// matchOptions reads the matcher flags.
func matchOptions(cmd *cli.Command) bulkedit.MatchOptions {
	return bulkedit.MatchOptions{
		Regex:         cmd.Bool("regex"),
		CaseSensitive: cmd.Bool("case-sensitive"),
		Invert:        cmd.Bool("invert"),
	}
}

// savePlan writes the plan back, honoring --output.
func savePlan(cmd *cli.Command, p *testplan.Plan, inPath string) error {
	outPath := cmd.String("output")
	if outPath == "" {
		outPath = inPath
	}
	if err := jmx.WriteFile(p, outPath); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	fmt.Printf("Saved plan to %s\n", outPath)
	return nil
}

// printPreview renders the matched entries as a styled list.
func printPreview(title string, previews []string) {
	tree := fancy.BranchNode(title, fmt.Sprintf("(%d)", len(previews)))
	for _, line := range previews {
		tree.Child(fancy.MatchText(line))
	}
	fmt.Println(tree.String())
}
