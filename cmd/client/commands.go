package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/client"
	"github.com/MKhiriev/task-manager-client/internal/tui"
	"github.com/spf13/cobra"
)

func (c *cli) runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	d, err := c.wire(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer d.close()

	ui := tui.New(d.client, d.runner, tui.WithBuildInfo(c.info), tui.WithLogger(d.log))
	return reported(d.app.Run(ctx, ui))
}

// runScenario reports failed steps but only fails when the service is
// unreachable at startup.
func (c *cli) runScenario(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	d, err := c.wire(ctx, out)
	if err != nil {
		return err
	}
	defer d.close()

	return reported(d.app.Run(ctx, client.FrontendFunc(func(ctx context.Context) error {
		d.runner(out).RunFull(ctx)
		return nil
	})))
}

func (c *cli) runQuick(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	d, err := c.wire(ctx, out)
	if err != nil {
		return err
	}
	defer d.close()

	if run := d.runner(out).RunQuick(ctx); !run.Succeeded() {
		return fmt.Errorf("%w: quick check failed", errReported)
	}
	return nil
}

func (c *cli) runHealth(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	d, err := c.wire(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer d.close()

	if !d.client.CheckHealth(ctx) {
		return fmt.Errorf("%w: service is not healthy", errReported)
	}
	return nil
}

// reported marks the startup check failure as already printed.
func reported(err error) error {
	if errors.Is(err, client.ErrServerUnreachable) {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return err
}
