package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/config"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/internal/utils"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathRegister = "/auth/register"
	pathLogin    = "/auth/login"
	pathGraphQL  = "/graphql"
	pathHealth   = "/actuator/health"
	pathMetrics  = "/actuator/metrics"

	// HeaderCorrelationID carries the id logged by both client and server.
	HeaderCorrelationID = "X-Correlation-ID"
)

type httpTaskManagerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	requestTimeout time.Duration
	probeTimeout   time.Duration

	logger *logger.Logger
}

// NewHTTPTaskManagerAdapter constructs the resty implementation of
// [TaskManagerAdapter].
//
// The base URL is normalised (a missing scheme defaults to http, trailing
// slashes are dropped). Auth and GraphQL calls are bounded by
// cfg.RequestTimeout, health and metrics probes by cfg.ProbeTimeout.
func NewHTTPTaskManagerAdapter(cfg config.ClientAdapter, log *logger.Logger) (TaskManagerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	// Timeouts are applied per call through the request context.
	client := utils.NewHTTPClient(baseURL, 0)
	client.SetLogger(restyLogger{log: log})

	return &httpTaskManagerAdapter{
		client:         client,
		ids:            utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		probeTimeout:   cfg.ProbeTimeout,
		logger:         log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// withTimeout bounds ctx by d. A zero d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// request prepares a request carrying a correlation id, reusing one already
// stored in ctx.
func (h *httpTaskManagerAdapter) request(ctx context.Context) (*resty.Request, string) {
	id, ok := utils.GetCorrelationIDFromContext(ctx)
	if !ok {
		id = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(HeaderCorrelationID, id), id
}

func (h *httpTaskManagerAdapter) authedRequest(ctx context.Context, token string) (*resty.Request, string) {
	req, id := h.request(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req, id
}

func (h *httpTaskManagerAdapter) trace(op, correlationID string, resp *resty.Response, started time.Time, err error) {
	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	if resp != nil {
		event = event.Int("status", resp.StatusCode())
	}
	event.
		Str("op", op).
		Str("correlation_id", correlationID).
		Dur("took", time.Since(started)).
		Msg("task manager call")
}

// Register implements [TaskManagerAdapter].
func (h *httpTaskManagerAdapter) Register(ctx context.Context, body models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register", pathRegister, body)
}

// Login implements [TaskManagerAdapter].
func (h *httpTaskManagerAdapter) Login(ctx context.Context, body models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "login", pathLogin, body)
}

func (h *httpTaskManagerAdapter) authenticate(ctx context.Context, op, path string, body any) (out models.AuthResponse, err error) {
	ctx, cancel := withTimeout(ctx, h.requestTimeout)
	defer cancel()

	started := time.Now()
	req, id := h.request(ctx)

	resp, err := req.SetBody(body).Post(path)
	defer func() { h.trace(op, id, resp, started, err) }()
	if err != nil {
		return models.AuthResponse{}, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AuthResponse{}, decodeError(op, err)
	}
	return out, nil
}

// GraphQL implements [TaskManagerAdapter].
func (h *httpTaskManagerAdapter) GraphQL(ctx context.Context, token string, body models.GraphQLRequest, out any) (err error) {
	ctx, cancel := withTimeout(ctx, h.requestTimeout)
	defer cancel()

	started := time.Now()
	req, id := h.authedRequest(ctx, token)

	resp, err := req.SetBody(body).Post(pathGraphQL)
	defer func() { h.trace("graphql", id, resp, started, err) }()
	if err != nil {
		return transportError("graphql", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope models.GraphQLResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return decodeError("graphql", err)
	}
	if len(envelope.Errors) > 0 {
		err = &GraphQLError{Errors: envelope.Errors}
		return err
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return decodeError("graphql data", err)
	}
	return nil
}

// Health implements [TaskManagerAdapter].
func (h *httpTaskManagerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var out models.HealthStatus
	err := h.probe(ctx, "health", pathHealth, &out)
	return out, err
}

// Metrics implements [TaskManagerAdapter].
func (h *httpTaskManagerAdapter) Metrics(ctx context.Context) (models.MetricsIndex, error) {
	var out models.MetricsIndex
	err := h.probe(ctx, "metrics", pathMetrics, &out)
	return out, err
}

func (h *httpTaskManagerAdapter) probe(ctx context.Context, op, path string, out any) (err error) {
	ctx, cancel := withTimeout(ctx, h.probeTimeout)
	defer cancel()

	started := time.Now()
	req, id := h.request(ctx)

	resp, err := req.Get(path)
	defer func() { h.trace(op, id, resp, started, err) }()
	if err != nil {
		return transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return decodeError(op, err)
	}
	return nil
}
