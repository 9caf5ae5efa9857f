// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote task manager service.
//
// [TaskManagerAdapter] decouples the service layer from HTTP. The package
// ships a resty-based implementation ([NewHTTPTaskManagerAdapter]) that makes
// exactly one attempt per call under a bounded timeout.
//
// Failures are classified into the error taxonomy in errors.go: transport
// failures wrap [ErrTransport], non-200 replies are [*StatusError], HTTP-200
// replies carrying a GraphQL errors array are [*GraphQLError], and bodies that
// cannot be decoded wrap [ErrDecode].
package adapter

import (
	"context"

	"github.com/MKhiriev/task-manager-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/task_manager_adapter_mock.go -package=mock

// TaskManagerAdapter is the wire-level API of the task manager service.
type TaskManagerAdapter interface {
	// Register creates an account via POST /auth/register. No Authorization
	// header is sent.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates via POST /auth/login. No Authorization header is
	// sent.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// GraphQL posts req to /graphql and decodes the data member into out.
	// A bearer Authorization header is attached iff token is non-empty.
	GraphQL(ctx context.Context, token string, req models.GraphQLRequest, out any) error

	// Health probes GET /actuator/health.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Metrics probes GET /actuator/metrics.
	Metrics(ctx context.Context) (models.MetricsIndex, error)
}
