package scenario

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/service"
	"github.com/MKhiriev/task-manager-client/models"
)

const (
	quickTitle       = "Quick Test Task"
	quickDescription = "This is a test task created by the quick test script"
	quickHours       = 2
)

// RunQuick executes the quick check with the configured credentials:
// health, login, create, list, update, get by id and delete. The first
// failure stops the run.
func (r *Runner) RunQuick(ctx context.Context) models.ScenarioRun {
	r.banner(app.IconTest, app.MsgQuickHeader, 40)

	st := &state{username: r.username}

	plan := []step{
		{
			name:   "health",
			header: header(1, app.MsgQuickHealth),
			run: func(ctx context.Context, _ *state) (bool, string) {
				return r.client.CheckHealth(ctx), ""
			},
			stop: app.MsgQuickNoServer,
		},
		{
			name:   "login",
			header: header(2, app.MsgQuickLogin),
			run: func(ctx context.Context, st *state) (bool, string) {
				return r.client.Login(ctx, st.username, r.password), st.username
			},
			stop: app.MsgQuickLoginFailed,
		},
		{
			name:   "create task",
			header: header(3, app.MsgQuickCreate),
			run: func(ctx context.Context, st *state) (bool, string) {
				st.task1 = r.client.CreateTask(ctx, service.NewCreateTaskInput(quickTitle, quickDescription,
					service.WithEstimationHours(quickHours),
				))
				return created(st.task1)
			},
			stop: app.MsgQuickCreateFailed,
		},
		{
			name:   "list tasks",
			header: header(4, app.MsgQuickList),
			run: func(ctx context.Context, _ *state) (bool, string) {
				tasks := r.client.GetTasks(ctx)
				return tasks != nil, countDetail(len(tasks), "tasks")
			},
			stop: app.MsgQuickListFailed,
		},
		{
			name:   "update task",
			header: header(5, app.MsgQuickUpdate),
			run: func(ctx context.Context, st *state) (bool, string) {
				done := true
				return r.client.UpdateTask(ctx, st.task1.ID, models.UpdateTaskInput{Completed: &done}) != nil, "completed=true"
			},
			stop: app.MsgQuickUpdateFailed,
		},
		{
			name:   "get task",
			header: header(6, app.MsgQuickGet),
			run: func(ctx context.Context, st *state) (bool, string) {
				return r.client.GetTaskByID(ctx, st.task1.ID) != nil, "id " + st.task1.ID.String()
			},
			stop: app.MsgQuickGetFailed,
		},
		{
			name:   "delete task",
			header: header(7, app.MsgQuickDelete),
			run: func(ctx context.Context, st *state) (bool, string) {
				return r.client.DeleteTask(ctx, st.task1.ID), "id " + st.task1.ID.String()
			},
			stop: app.MsgQuickDeleteFailed,
		},
	}

	run := r.execute(ctx, models.ScenarioQuick, plan, "%s\n", st)

	if run.Succeeded() {
		fmt.Fprintf(r.out, "\n%s %s\n", app.IconOK, app.MsgQuickPassed)
		fmt.Fprintln(r.out, app.MsgQuickPassedHint)
	}

	r.report(run)
	return run
}
