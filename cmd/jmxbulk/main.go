package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atlanticdynamic/jmxbulk/internal/fancy"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "jmxbulk",
		Version: Version,
		Usage:   "Bulk edit JMeter test plans: delete, disable or enable samplers and prune header rows by pattern",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text or json)",
				Value: "text",
			},
		},
		Commands: []*cli.Command{
			versionCmd,
			inspectCmd,
			samplersCmd,
			headersCmd,
			applyCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, fancy.ErrorText(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
