package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan/jmx"
	"github.com/urfave/cli/v3"
)

var headersCmd = &cli.Command{
	Name:    "headers",
	Usage:   "Delete header rows whose name matches a pattern, across all HTTP Header Managers",
	Flags:   matchFlags(),
	Suggest: true,
	Action:  headersAction,
}

func headersAction(_ context.Context, cmd *cli.Command) error {
	SetupLogger(cmd)

	path, err := planPath(cmd)
	if err != nil {
		return err
	}

	matcher, err := bulkedit.NewMatcher(cmd.String("pattern"), matchOptions(cmd))
	if err != nil {
		return err
	}

	plan, err := jmx.FromFilePath(path)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	scope, err := bulkedit.ResolveScope(plan, cmd.StringSlice("scope"))
	if err != nil {
		return err
	}

	matches := bulkedit.FindHeaders(plan, matcher, scope)
	if len(matches) == 0 {
		fmt.Println("No headers match the pattern")
		return nil
	}

	if cmd.Bool("dry-run") {
		previews := make([]string, 0, len(matches))
		for _, m := range matches {
			previews = append(previews, m.Preview())
		}
		printPreview("Matching Headers", previews)
		fmt.Printf("Found %d matching header(s)\n", len(matches))
		return nil
	}

	res := bulkedit.DeleteHeaderRows(matches, matcher)
	if err := savePlan(cmd, plan, path); err != nil {
		return err
	}

	fmt.Printf("Successfully deleted %d header row(s) matching pattern: %s\n",
		res.Affected, res.Pattern)
	return nil
}
