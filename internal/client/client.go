package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/internal/service"
	"github.com/MKhiriev/task-manager-client/models"
)

// Client is the session client façade. It owns one session and prints a
// diagnostic line for every operation.
type Client struct {
	services *service.Services
	session  *models.Session
	out      io.Writer

	logger *logger.Logger
}

// NewClient builds a façade with an empty session printing to stdout.
func NewClient(services *service.Services, log *logger.Logger) *Client {
	return &Client{
		services: services,
		session:  &models.Session{},
		out:      os.Stdout,
		logger:   log,
	}
}

// SetOutput redirects diagnostics to w.
func (c *Client) SetOutput(w io.Writer) {
	c.out = w
}

// Output returns the current diagnostics writer.
func (c *Client) Output() io.Writer {
	return c.out
}

// Session returns a detached copy of the current session.
func (c *Client) Session() models.Session {
	return c.session.Snapshot()
}

func (c *Client) ok(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", app.IconOK, fmt.Sprintf(format, args...))
}

func (c *Client) fail(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", app.IconFail, fmt.Sprintf(format, args...))
}

// Register creates an account and, on success, logs in as it.
func (c *Client) Register(ctx context.Context, params models.RegisterRequest) bool {
	identity, err := c.services.AuthService.Register(ctx, c.session, params)
	if err != nil {
		c.fail(app.MsgRegisterFailed, describe(err))
		return false
	}

	c.ok(app.MsgRegisterOK, identity.Username, identity.Role)
	return true
}

func (c *Client) Login(ctx context.Context, username, password string) bool {
	identity, err := c.services.AuthService.Login(ctx, c.session, username, password)
	if err != nil {
		c.fail(app.MsgLoginFailed, describe(err))
		return false
	}

	c.ok(app.MsgLoginOK, identity.Username, identity.Role)
	return true
}

func (c *Client) Logout() {
	c.services.AuthService.Logout(c.session)
	c.ok(app.MsgLoggedOut)
}

// GetTasks returns nil when the tasks could not be retrieved.
func (c *Client) GetTasks(ctx context.Context) []models.Task {
	tasks, err := c.services.TaskService.List(ctx, c.session)
	if err != nil {
		c.failList(app.MsgTasksFailed, err)
		return nil
	}

	c.ok(app.MsgTasksRetrieved, len(tasks))
	return tasks
}

// GetTaskByID returns nil when the task is absent or the call failed.
func (c *Client) GetTaskByID(ctx context.Context, id models.TaskID) *models.Task {
	task, err := c.services.TaskService.Get(ctx, c.session, id)
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		c.fail(app.MsgTaskNotFound, id)
		return nil
	case err != nil:
		c.fail(app.MsgTaskFailed, describe(err))
		return nil
	}

	c.ok(app.MsgTaskRetrieved, task.Title)
	return &task
}

func (c *Client) CreateTask(ctx context.Context, input models.CreateTaskInput) *models.Task {
	task, err := c.services.TaskService.Create(ctx, c.session, input)
	if err != nil {
		c.fail(app.MsgTaskCreateFailed, describe(err))
		return nil
	}

	c.ok(app.MsgTaskCreated, task.Title, task.ID)
	return &task
}

func (c *Client) UpdateTask(ctx context.Context, id models.TaskID, input models.UpdateTaskInput) *models.Task {
	task, err := c.services.TaskService.Update(ctx, c.session, id, input)
	if err != nil {
		c.fail(app.MsgTaskUpdateFailed, describe(err))
		return nil
	}

	c.ok(app.MsgTaskUpdated, task.Title, task.ID)
	return &task
}

// DeleteTask reports false both when the server declines the deletion and
// when the call fails; the printed diagnostics differ.
func (c *Client) DeleteTask(ctx context.Context, id models.TaskID) bool {
	deleted, err := c.services.TaskService.Delete(ctx, c.session, id)
	switch {
	case err != nil:
		c.fail(app.MsgTaskDeleteFailed, describe(err))
		return false
	case !deleted:
		c.fail(app.MsgTaskDeleteRejected, id)
		return false
	}

	c.ok(app.MsgTaskDeleted, id)
	return true
}

// GetUsers returns nil when the users could not be retrieved.
func (c *Client) GetUsers(ctx context.Context) []models.User {
	users, err := c.services.UserService.List(ctx, c.session)
	if err != nil {
		c.failList(app.MsgUsersFailed, err)
		return nil
	}

	c.ok(app.MsgUsersRetrieved, len(users))
	return users
}

// failList prints GraphQL failures of list queries without the operation
// prefix.
func (c *Client) failList(format string, err error) {
	var gqlErr *adapter.GraphQLError
	if errors.As(err, &gqlErr) {
		c.fail(app.MsgGraphQLErrors, gqlErr.Error())
		return
	}
	c.fail(format, describe(err))
}

// CheckHealth reports true only when the service answers 200 with status UP.
func (c *Client) CheckHealth(ctx context.Context) bool {
	up, status, err := c.services.MonitorService.Health(ctx)
	if err != nil {
		c.fail(app.MsgHealthFailed, describeProbe(err))
		return false
	}

	c.ok(app.MsgHealth, status.Status)
	return up
}

// GetMetrics returns nil when the metrics index could not be retrieved.
func (c *Client) GetMetrics(ctx context.Context) *models.MetricsIndex {
	idx, err := c.services.MonitorService.Metrics(ctx)
	if err != nil {
		c.fail(app.MsgMetricsFailed, describeProbe(err))
		return nil
	}

	c.ok(app.MsgMetrics, len(idx.Names))
	return &idx
}
