package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/client"
	"github.com/MKhiriev/task-manager-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const metricsPreview = 10

// action talks to the service and prints into out.
type action func(ctx context.Context, out io.Writer)

// cmdRun executes fn with the client diagnostics captured.
func cmdRun(ctx context.Context, c *client.Client, fn action) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		c.SetOutput(&buf)
		fn(ctx, &buf)
		return actionDoneMsg{output: buf.String()}
	}
}

func failLine(msg string) string {
	return app.IconFail + " " + msg
}

func registerAction(c *client.Client, req models.RegisterRequest) action {
	return func(ctx context.Context, _ io.Writer) {
		c.Register(ctx, req)
	}
}

func loginAction(c *client.Client, username, password string) action {
	return func(ctx context.Context, _ io.Writer) {
		c.Login(ctx, username, password)
	}
}

func logoutAction(c *client.Client) action {
	return func(context.Context, io.Writer) {
		c.Logout()
	}
}

func listTasksAction(c *client.Client, now func() time.Time) action {
	return func(ctx context.Context, out io.Writer) {
		for _, task := range c.GetTasks(ctx) {
			fmt.Fprintln(out, taskLine(task, now()))
		}
	}
}

func taskLine(task models.Task, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  - [%s] %s - %s", task.ID, task.Title, task.Status)
	if names := task.AssigneeNames(); len(names) > 0 {
		fmt.Fprintf(&b, " (assigned to: %s)", strings.Join(names, ", "))
	}
	if created, ok := task.Created(); ok {
		fmt.Fprintf(&b, " · created %s", humanize.RelTime(created, now, "ago", "from now"))
	}
	return b.String()
}

func getTaskAction(c *client.Client, id models.TaskID) action {
	return func(ctx context.Context, out io.Writer) {
		task := c.GetTaskByID(ctx, id)
		if task == nil {
			return
		}
		fmt.Fprint(out, taskDetail(*task))
	}
}

func taskDetail(task models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", task.Title)
	fmt.Fprintf(&b, "Description: %s\n", task.Description)
	fmt.Fprintf(&b, "Status: %s\n", task.Status)
	fmt.Fprintf(&b, "Due Date: %s\n", valueOrNotSet(task.DueDate))
	hours := "Not set"
	if task.EstimationHours != nil {
		hours = strconv.FormatFloat(*task.EstimationHours, 'f', -1, 64)
	}
	fmt.Fprintf(&b, "Estimation: %s hours\n", hours)
	return b.String()
}

func createTaskAction(c *client.Client, input models.CreateTaskInput) action {
	return func(ctx context.Context, _ io.Writer) {
		c.CreateTask(ctx, input)
	}
}

func updateTaskAction(c *client.Client, id models.TaskID, input models.UpdateTaskInput) action {
	return func(ctx context.Context, _ io.Writer) {
		c.UpdateTask(ctx, id, input)
	}
}

func deleteTaskAction(c *client.Client, id models.TaskID) action {
	return func(ctx context.Context, _ io.Writer) {
		c.DeleteTask(ctx, id)
	}
}

func listUsersAction(c *client.Client) action {
	return func(ctx context.Context, out io.Writer) {
		for _, u := range c.GetUsers(ctx) {
			fmt.Fprintf(out, "  - [%s] %s (%s) - %d tasks\n", u.ID, u.Username, u.Email, len(u.AssignedTasks))
		}
	}
}

func healthAction(c *client.Client) action {
	return func(ctx context.Context, _ io.Writer) {
		c.CheckHealth(ctx)
	}
}

func metricsAction(c *client.Client) action {
	return func(ctx context.Context, out io.Writer) {
		idx := c.GetMetrics(ctx)
		if idx == nil || len(idx.Names) == 0 {
			return
		}
		names, more := idx.Preview(metricsPreview)
		fmt.Fprintln(out, "Sample metrics:")
		for _, name := range names {
			fmt.Fprintf(out, "  - %s\n", name)
		}
		if more > 0 {
			fmt.Fprintf(out, "  ... and %s more\n", humanize.Comma(int64(more)))
		}
	}
}

func scenarioAction(newRunner RunnerFactory) action {
	return func(ctx context.Context, out io.Writer) {
		newRunner(out).RunFull(ctx)
	}
}
