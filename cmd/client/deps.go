package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/client"
	"github.com/MKhiriev/task-manager-client/internal/config"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/internal/scenario"
	"github.com/MKhiriev/task-manager-client/internal/service"
	"github.com/MKhiriev/task-manager-client/internal/store"
)

const logRole = "task-manager-client"

// deps is the object graph shared by every subcommand.
type deps struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	metrics  *instrumentation.Metrics
	client   *client.Client
	app      *client.App
	storages *store.ClientStorages
}

func (c *cli) wire(ctx context.Context, out io.Writer) (*deps, error) {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(logRole, logger.WithLevel(cfg.Log.Level), logger.WithFile(cfg.Log.File))
	log.Debug().Any("config", cfg.Adapter).Msg("received configs")

	taskManager, err := adapter.NewHTTPTaskManagerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create task manager adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create scenario journal: %w", err)
	}

	metrics := instrumentation.NewMetrics()
	cl := client.NewClient(service.NewServices(taskManager, metrics, log), log)
	cl.SetOutput(out)

	return &deps{
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		client:   cl,
		app:      client.NewApp(cl, cfg.Adapter.BaseURL, log),
		storages: storages,
	}, nil
}

func (d *deps) runner(out io.Writer) *scenario.Runner {
	return scenario.NewRunner(d.client,
		scenario.WithOutput(out),
		scenario.WithJournal(d.storages.Journal),
		scenario.WithMetrics(d.metrics),
		scenario.WithBaseURL(d.cfg.Adapter.BaseURL),
		scenario.WithCredentials(d.cfg.Scenario.Username, d.cfg.Scenario.Password),
		scenario.WithLogger(d.log),
	)
}

func (d *deps) close() {
	if err := d.storages.Close(); err != nil {
		d.log.Error().Err(err).Msg("close scenario journal")
	}
}
