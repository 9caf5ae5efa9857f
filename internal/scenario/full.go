package scenario

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/service"
	"github.com/MKhiriev/task-manager-client/models"
)

// Fixtures of the full scenario.
const (
	testUserPrefix   = "testuser_"
	testEmailDomain  = "@test.com"
	testFirstName    = "Test"
	testLastName     = "User"
	testUserPassword = "testpass123"

	task1Title       = "Complete project documentation"
	task1Description = "Write comprehensive documentation for the project"
	task1DueDate     = "2024-12-31"
	task1Hours       = 8

	task2Title       = "Review code changes"
	task2Description = "Review and approve pending code changes"
	task2Hours       = 4
)

func header(n int, format string, args ...any) func(*state) string {
	return func(*state) string {
		return fmt.Sprintf("%d. %s", n, fmt.Sprintf(format, args...))
	}
}

// RunFull executes the complete scenario: health, registration of a fresh
// user, two task creations, list, update, get by id, users, metrics and
// cleanup. A failed health check or registration stops the run; any other
// failure only skips the steps that need its result.
func (r *Runner) RunFull(ctx context.Context) models.ScenarioRun {
	fmt.Fprintln(r.out)
	r.banner(app.IconTest, app.MsgScenarioHeader, 50)

	st := &state{username: testUserPrefix + r.now().Format("150405")}
	hasTask1 := func(st *state) bool { return st.task1 != nil }
	hasTask2 := func(st *state) bool { return st.task2 != nil }

	plan := []step{
		{
			name:   "health",
			header: header(1, app.MsgStepHealth),
			run: func(ctx context.Context, _ *state) (bool, string) {
				return r.client.CheckHealth(ctx), ""
			},
			stop: app.MsgStopUnhealthy,
		},
		{
			name:   "register",
			header: header(2, app.MsgStepRegister),
			run: func(ctx context.Context, st *state) (bool, string) {
				ok := r.client.Register(ctx, models.RegisterRequest{
					Username:  st.username,
					Email:     st.username + testEmailDomain,
					FirstName: testFirstName,
					LastName:  testLastName,
					Password:  testUserPassword,
				})
				return ok, st.username
			},
			stop: app.MsgStopRegistration,
		},
		{
			name:   "create task 1",
			header: header(3, app.MsgStepCreateTasks),
			run: func(ctx context.Context, st *state) (bool, string) {
				st.task1 = r.client.CreateTask(ctx, service.NewCreateTaskInput(task1Title, task1Description,
					service.WithDueDate(task1DueDate),
					service.WithEstimationHours(task1Hours),
				))
				return created(st.task1)
			},
		},
		{
			name: "create task 2",
			run: func(ctx context.Context, st *state) (bool, string) {
				st.task2 = r.client.CreateTask(ctx, service.NewCreateTaskInput(task2Title, task2Description,
					service.WithEstimationHours(task2Hours),
				))
				if st.task1 == nil || st.task2 == nil {
					fmt.Fprintf(r.out, "%s %s\n", app.IconFail, app.MsgContinueCreation)
				}
				return created(st.task2)
			},
		},
		{
			name:   "list tasks",
			header: header(4, app.MsgStepListTasks),
			run: func(ctx context.Context, _ *state) (bool, string) {
				tasks := r.client.GetTasks(ctx)
				return tasks != nil, countDetail(len(tasks), "tasks")
			},
		},
		{
			name:   "update task 1",
			header: func(st *state) string { return header(5, app.MsgStepUpdateTask, st.task1.ID)(st) },
			ready:  hasTask1,
			run: func(ctx context.Context, st *state) (bool, string) {
				done := true
				updated := r.client.UpdateTask(ctx, st.task1.ID, models.UpdateTaskInput{Completed: &done})
				return updated != nil, "completed=true"
			},
		},
		{
			name:   "get task 1",
			header: func(st *state) string { return header(6, app.MsgStepGetTask, st.task1.ID)(st) },
			ready:  hasTask1,
			run: func(ctx context.Context, st *state) (bool, string) {
				return r.client.GetTaskByID(ctx, st.task1.ID) != nil, "id " + st.task1.ID.String()
			},
		},
		{
			name:   "list users",
			header: header(7, app.MsgStepListUsers),
			run: func(ctx context.Context, _ *state) (bool, string) {
				users := r.client.GetUsers(ctx)
				return users != nil, countDetail(len(users), "users")
			},
		},
		{
			name:   "metrics",
			header: header(8, app.MsgStepMetrics),
			run: func(ctx context.Context, _ *state) (bool, string) {
				idx := r.client.GetMetrics(ctx)
				if idx == nil {
					return false, ""
				}
				return true, countDetail(len(idx.Names), "metrics")
			},
		},
		{
			name:   "delete task 2",
			header: func(st *state) string { return header(9, app.MsgStepCleanup, st.task2.ID)(st) },
			ready:  hasTask2,
			run: func(ctx context.Context, st *state) (bool, string) {
				return r.client.DeleteTask(ctx, st.task2.ID), "id " + st.task2.ID.String()
			},
		},
	}

	run := r.execute(ctx, models.ScenarioFull, plan, "\n%s\n", st)

	switch {
	case run.Aborted:
		fmt.Fprintf(r.out, "\n%s %s\n", app.IconFail, app.MsgScenarioStopped)
	case run.Succeeded():
		fmt.Fprintf(r.out, "\n%s %s\n", app.IconOK, app.MsgScenarioPassed)
		fmt.Fprintln(r.out, app.MsgScenarioLogsHint)
	default:
		fmt.Fprintf(r.out, "\n%s %s\n", app.IconFail, fmt.Sprintf(app.MsgScenarioFailed, run.Count(models.StepFailed)))
		fmt.Fprintln(r.out, app.MsgScenarioLogsHint)
	}

	r.report(run)
	return run
}

func created(task *models.Task) (bool, string) {
	if task == nil {
		return false, ""
	}
	return true, "id " + task.ID.String()
}

func countDetail(n int, what string) string {
	return fmt.Sprintf("%d %s", n, what)
}
