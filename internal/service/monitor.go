package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/models"
)

const unknownHealthStatus = "UNKNOWN"

type monitorService struct {
	*base
}

func NewMonitorService(taskManager adapter.TaskManagerAdapter, metrics *instrumentation.Metrics, log *logger.Logger) MonitorService {
	return &monitorService{base: newBase(taskManager, metrics, log)}
}

func (s *monitorService) Health(ctx context.Context) (bool, models.HealthStatus, error) {
	ctx, c := s.begin(ctx, "monitor.health")

	status, err := s.adapter.Health(ctx)
	if err != nil {
		return false, models.HealthStatus{}, c.end(fmt.Errorf("health: %w", err))
	}
	if status.Status == "" {
		status.Status = unknownHealthStatus
	}

	if !status.Up() {
		c.finish(instrumentation.OutcomeRejected, nil)
		return false, status, nil
	}
	return true, status, c.end(nil)
}

func (s *monitorService) Metrics(ctx context.Context) (models.MetricsIndex, error) {
	ctx, c := s.begin(ctx, "monitor.metrics")

	idx, err := s.adapter.Metrics(ctx)
	if err != nil {
		return models.MetricsIndex{}, c.end(fmt.Errorf("metrics: %w", err))
	}
	return idx, c.end(nil)
}
