package main

import (
	"errors"

	"github.com/MKhiriev/task-manager-client/internal/config"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/spf13/cobra"
)

// errReported marks failures whose diagnostics were already printed.
var errReported = errors.New("failure reported")

type cli struct {
	flags *config.Flags
	info  models.AppBuildInfo
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{info: info}

	root := &cobra.Command{
		Use:   "client",
		Short: "Command-line client for the Task Manager API",
		Long: `client talks to a Task Manager service over its REST auth endpoints,
its GraphQL endpoint and its actuator probes.

Without a subcommand it checks that the service is reachable and opens
the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.BuildVersion(),
		RunE:          c.runMenu,
	}
	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Open the interactive menu",
			Args:  cobra.NoArgs,
			RunE:  c.runMenu,
		},
		&cobra.Command{
			Use:   "scenario",
			Short: "Run the complete test scenario",
			Args:  cobra.NoArgs,
			RunE:  c.runScenario,
		},
		&cobra.Command{
			Use:   "quick",
			Short: "Run the quick check with the default account",
			Args:  cobra.NoArgs,
			RunE:  c.runQuick,
		},
		&cobra.Command{
			Use:   "health",
			Short: "Probe the service health once",
			Args:  cobra.NoArgs,
			RunE:  c.runHealth,
		},
		newHistoryCmd(c),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				cmd.Print(c.info.String())
			},
		},
	)

	return root
}
