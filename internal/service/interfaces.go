// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session client core: authentication, task
// and user operations and service probes on top of
// [adapter.TaskManagerAdapter].
//
// Every operation that needs credentials takes the caller's *models.Session
// explicitly; the package keeps no ambient client state. Each call records its
// outcome and latency in [instrumentation.Metrics] and logs it.
package service

import (
	"context"

	"github.com/MKhiriev/task-manager-client/models"
)

// AuthService manages the session's credentials.
type AuthService interface {
	// Register creates an account. On success token and identity are stored
	// in sess together; on failure sess is left as it was.
	Register(ctx context.Context, sess *models.Session, params models.RegisterRequest) (models.Identity, error)

	// Login authenticates with the same all-or-nothing contract as Register.
	Login(ctx context.Context, sess *models.Session, username, password string) (models.Identity, error)

	// Logout clears sess locally without contacting the server.
	Logout(sess *models.Session)
}

// TaskService performs task queries and mutations.
type TaskService interface {
	List(ctx context.Context, sess *models.Session) ([]models.Task, error)

	// Get returns [ErrTaskNotFound] when the server answers task: null.
	Get(ctx context.Context, sess *models.Session, id models.TaskID) (models.Task, error)

	Create(ctx context.Context, sess *models.Session, input models.CreateTaskInput) (models.Task, error)

	Update(ctx context.Context, sess *models.Session, id models.TaskID, input models.UpdateTaskInput) (models.Task, error)

	// Delete returns the server's boolean verdict. false with a nil error
	// means the server declined the deletion.
	Delete(ctx context.Context, sess *models.Session, id models.TaskID) (bool, error)
}

// UserService lists users.
type UserService interface {
	List(ctx context.Context, sess *models.Session) ([]models.User, error)
}

// MonitorService probes service health and metrics.
type MonitorService interface {
	// Health reports true only for HTTP 200 with status UP.
	Health(ctx context.Context) (bool, models.HealthStatus, error)

	Metrics(ctx context.Context) (models.MetricsIndex, error)
}
