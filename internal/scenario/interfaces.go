// Package scenario drives scripted end-to-end runs against the task manager:
// the full scenario and the quick check. Each run is recorded step by step,
// printed as a summary and optionally appended to the journal.
package scenario

import (
	"context"

	"github.com/MKhiriev/task-manager-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_client_mock.go -package=mock

// SessionClient is the part of the client façade a scenario drives. Results
// follow the façade's sentinel convention: nil or false means the operation
// did not succeed and a diagnostic has already been printed.
type SessionClient interface {
	CheckHealth(ctx context.Context) bool
	Register(ctx context.Context, params models.RegisterRequest) bool
	Login(ctx context.Context, username, password string) bool
	GetTasks(ctx context.Context) []models.Task
	GetTaskByID(ctx context.Context, id models.TaskID) *models.Task
	CreateTask(ctx context.Context, input models.CreateTaskInput) *models.Task
	UpdateTask(ctx context.Context, id models.TaskID, input models.UpdateTaskInput) *models.Task
	DeleteTask(ctx context.Context, id models.TaskID) bool
	GetUsers(ctx context.Context) []models.User
	GetMetrics(ctx context.Context) *models.MetricsIndex
}
