package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan/jmx"
	"github.com/urfave/cli/v3"
)

var samplersCmd = &cli.Command{
	Name:  "samplers",
	Usage: "Delete, disable or enable samplers matching a URI pattern",
	Flags: append(matchFlags(),
		&cli.StringFlag{
			Name:    "action",
			Aliases: []string{"a"},
			Usage:   "Action to apply: delete, disable or enable",
			Value:   bulkedit.ActionDisable.String(),
		},
	),
	Suggest: true,
	Action:  samplersAction,
}

func samplersAction(_ context.Context, cmd *cli.Command) error {
	SetupLogger(cmd)

	path, err := planPath(cmd)
	if err != nil {
		return err
	}

	action, err := bulkedit.ParseAction(cmd.String("action"))
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

	matches := bulkedit.FindSamplers(plan, matcher, scope)
	if len(matches) == 0 {
		fmt.Println("No samplers match the pattern")
		return nil
	}

	if cmd.Bool("dry-run") {
		previews := make([]string, 0, len(matches))
		for _, m := range matches {
			previews = append(previews, m.Preview())
		}
		printPreview("Matching Samplers", previews)
		fmt.Printf("Found %d matching sampler(s)\n", len(matches))
		return nil
	}

	res := bulkedit.ApplySamplers(plan, matches, action, matcher)
	if err := savePlan(cmd, plan, path); err != nil {
		return err
	}

	fmt.Printf("Successfully %s %d sampler(s) matching pattern: %s\n",
		res.Action.Past(), res.Affected, res.Pattern)
	return nil
}
