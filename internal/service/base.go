package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/internal/utils"
)

// base carries what every service needs.
type base struct {
	adapter adapter.TaskManagerAdapter
	metrics *instrumentation.Metrics
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

func newBase(taskManager adapter.TaskManagerAdapter, metrics *instrumentation.Metrics, log *logger.Logger) *base {
	if log == nil {
		log = logger.Nop()
	}
	return &base{adapter: taskManager, metrics: metrics, ids: utils.NewUUIDGenerator(), logger: log}
}

// call is one in-flight operation.
type call struct {
	b             *base
	operation     string
	correlationID string
	started       time.Time
}

// begin tags ctx with a fresh correlation id shared by the log entry and the
// request header.
func (b *base) begin(ctx context.Context, operation string) (context.Context, *call) {
	id := b.ids.Generate()
	return utils.WithCorrelationID(ctx, id), &call{
		b:             b,
		operation:     operation,
		correlationID: id,
		started:       time.Now(),
	}
}

// end records err's outcome and returns err unchanged.
func (c *call) end(err error) error {
	c.finish(outcomeOf(err), err)
	return err
}

func (c *call) finish(outcome instrumentation.Outcome, err error) {
	took := time.Since(c.started)
	c.b.metrics.Observe(c.operation, outcome, took)

	event := c.b.logger.Info()
	if err != nil {
		event = c.b.logger.Warn().Err(err)
	}
	event.
		Str("operation", c.operation).
		Str("outcome", string(outcome)).
		Str("correlation_id", c.correlationID).
		Dur("took", took).
		Msg("operation finished")
}

// outcomeOf maps an error onto the outcome labels.
func outcomeOf(err error) instrumentation.Outcome {
	switch {
	case err == nil:
		return instrumentation.OutcomeOK
	case errors.Is(err, ErrTaskNotFound):
		return instrumentation.OutcomeNotFound
	case errors.Is(err, ErrEmptyToken), errors.Is(err, ErrEmptyResult):
		return instrumentation.OutcomeRejected
	case errors.Is(err, adapter.ErrGraphQL):
		return instrumentation.OutcomeGraphQL
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		return instrumentation.OutcomeHTTP
	case errors.Is(err, adapter.ErrDecode):
		return instrumentation.OutcomeDecode
	default:
		return instrumentation.OutcomeTransport
	}
}
