package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/logger"
)

// ErrServerUnreachable is returned by [App.Run] when the startup health check
// fails.
var ErrServerUnreachable = errors.New("task manager server is not reachable")

// App runs a front end after making sure the remote service answers.
type App struct {
	client  *Client
	baseURL string

	logger *logger.Logger
}

func NewApp(c *Client, baseURL string, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{client: c, baseURL: baseURL, logger: log}
}

// Client returns the façade shared by every front end of the app.
func (a *App) Client() *Client {
	return a.client
}

// CheckServer probes the service health and prints the startup diagnostics.
func (a *App) CheckServer(ctx context.Context) error {
	out := a.client.Output()
	fmt.Fprintf(out, "%s %s\n", app.IconScan, app.MsgServerCheck)

	if !a.client.CheckHealth(ctx) {
		fmt.Fprintf(out, "%s %s\n", app.IconFail, fmt.Sprintf(app.MsgServerUnreachable, a.baseURL))
		a.logger.Error().Str("base_url", a.baseURL).Msg("startup health check failed")
		return ErrServerUnreachable
	}
	return nil
}

// Run performs the startup check and then hands control to front.
func (a *App) Run(ctx context.Context, front Frontend) error {
	if err := a.CheckServer(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("base_url", a.baseURL).Msg("client started")
	if err := front.Run(ctx); err != nil {
		return fmt.Errorf("run client: %w", err)
	}
	return nil
}
