package main

import (
	"github.com/atlanticdynamic/jmxbulk/internal/logging"
	"github.com/urfave/cli/v3"
)

// SetupLogger configures the default logger from the root command flags.
func SetupLogger(cmd *cli.Command) {
	root := cmd.Root()
	logging.Setup(root.String("log-level"), root.String("log-format"))
}
