package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// graphQLReply decodes data into the caller's out value, as the adapter does.
func graphQLReply(t *testing.T, data string) func(context.Context, string, models.GraphQLRequest, any) error {
	return func(_ context.Context, _ string, _ models.GraphQLRequest, out any) error {
		require.NoError(t, json.Unmarshal([]byte(data), out))
		return nil
	}
}

// captureInput returns the JSON form of the "input" variable of req.
func captureInput(t *testing.T, req models.GraphQLRequest) string {
	t.Helper()
	raw, err := json.Marshal(req.Variables["input"])
	require.NoError(t, err)
	return string(raw)
}

func authedSession() *models.Session {
	s := &models.Session{}
	s.Set("tok", models.Identity{Username: "user", Role: "USER"})
	return s
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestTaskService_List(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)

	mockAdapter.EXPECT().GraphQL(gomock.Any(), "tok", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.GraphQLRequest, out any) error {
			assert.Contains(t, req.Query, "tasks {")
			assert.Contains(t, req.Query, "assignedUsers")
			assert.Nil(t, req.Variables)
			return graphQLReply(t, `{"tasks":[{"id":"1","title":"a","status":"TODO"},{"id":"2","title":"b","status":"DONE"}]}`)(ctx, token, req, out)
		})

	tasks, err := svc.TaskService.List(context.Background(), authedSession())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.TaskStatusDone, tasks[1].Status)
}

func TestTaskService_List_NullIsEmpty(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)
	mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(graphQLReply(t, `{"tasks":null}`))

	tasks, err := svc.TaskService.List(context.Background(), authedSession())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_List_NoTokenSendsEmptyToken(t *testing.T) {
	svc, mockAdapter, metrics := newTestServices(t)
	mockAdapter.EXPECT().GraphQL(gomock.Any(), "", gomock.Any(), gomock.Any()).
		Return(&adapter.GraphQLError{Errors: []models.GraphQLError{{Message: "Unauthorized"}}})

	tasks, err := svc.TaskService.List(context.Background(), &models.Session{})

	assert.Nil(t, tasks)
	assert.ErrorIs(t, err, adapter.ErrGraphQL)
	assert.EqualValues(t, 1, outcomeCount(t, metrics, "task.list", instrumentation.OutcomeGraphQL))
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestTaskService_Get_NotFound(t *testing.T) {
	svc, mockAdapter, metrics := newTestServices(t)

	mockAdapter.EXPECT().GraphQL(gomock.Any(), "tok", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.GraphQLRequest, out any) error {
			assert.Equal(t, "999", req.Variables["id"])
			return graphQLReply(t, `{"task":null}`)(ctx, token, req, out)
		})

	_, err := svc.TaskService.Get(context.Background(), authedSession(), models.TaskIDFromInt(999))

	require.ErrorIs(t, err, ErrTaskNotFound)
	assert.NotErrorIs(t, err, adapter.ErrTransport)
	assert.EqualValues(t, 1, outcomeCount(t, metrics, "task.get", instrumentation.OutcomeNotFound))
}

func TestTaskService_Get_Found(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)
	mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(graphQLReply(t, `{"task":{"id":"3","title":"Write docs","estimationHours":8}}`))

	task, err := svc.TaskService.Get(context.Background(), authedSession(), "3")

	require.NoError(t, err)
	assert.Equal(t, "Write docs", task.Title)
	require.NotNil(t, task.EstimationHours)
	assert.InDelta(t, 8.0, *task.EstimationHours, 0.001)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTaskService_Create_RequiredOnlyPayload(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)

	mockAdapter.EXPECT().GraphQL(gomock.Any(), "tok", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.GraphQLRequest, out any) error {
			assert.Contains(t, req.Query, "createTask(input: $input)")
			assert.JSONEq(t, `{"title":"T","description":"D","completed":false}`, captureInput(t, req))
			return graphQLReply(t, `{"createTask":{"id":"10","title":"T"}}`)(ctx, token, req, out)
		})

	task, err := svc.TaskService.Create(context.Background(), authedSession(), NewCreateTaskInput("T", "D"))

	require.NoError(t, err)
	assert.Equal(t, models.TaskID("10"), task.ID)
}

func TestTaskService_Create_WithOptionals(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)

	mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.GraphQLRequest, out any) error {
			assert.JSONEq(t, `{
				"title":"Complete project documentation",
				"description":"Write comprehensive documentation for the project",
				"completed":false,
				"dueDate":"2024-12-31",
				"estimationHours":8,
				"assignedUserIds":["1","2"]
			}`, captureInput(t, req))
			return graphQLReply(t, `{"createTask":{"id":"11"}}`)(ctx, token, req, out)
		})

	input := NewCreateTaskInput(
		"Complete project documentation",
		"Write comprehensive documentation for the project",
		WithDueDate("2024-12-31"),
		WithEstimationHours(8),
		WithAssignees("1", "2"),
	)
	_, err := svc.TaskService.Create(context.Background(), authedSession(), input)
	require.NoError(t, err)
}

func TestTaskService_Create_NullResult(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)
	mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(graphQLReply(t, `{"createTask":null}`))

	_, err := svc.TaskService.Create(context.Background(), authedSession(), NewCreateTaskInput("T", "D"))
	assert.ErrorIs(t, err, ErrEmptyResult)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestTaskService_Update_Payloads(t *testing.T) {
	done := true
	tests := []struct {
		name  string
		input models.UpdateTaskInput
		want  string
	}{
		{name: "no optionals", input: models.UpdateTaskInput{}, want: `{}`},
		{name: "only completed", input: models.UpdateTaskInput{Completed: &done}, want: `{"completed":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter, _ := newTestServices(t)

			mockAdapter.EXPECT().GraphQL(gomock.Any(), "tok", gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, token string, req models.GraphQLRequest, out any) error {
					assert.Equal(t, "5", req.Variables["id"])
					assert.JSONEq(t, tt.want, captureInput(t, req))
					return graphQLReply(t, `{"updateTask":{"id":"5","title":"x","completed":true}}`)(ctx, token, req, out)
				})

			task, err := svc.TaskService.Update(context.Background(), authedSession(), "5", tt.input)
			require.NoError(t, err)
			assert.True(t, task.Completed)
		})
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestTaskService_Delete(t *testing.T) {
	svc, mockAdapter, metrics := newTestServices(t)

	gomock.InOrder(
		mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(graphQLReply(t, `{"deleteTask":true}`)),
		mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(graphQLReply(t, `{"deleteTask":false}`)),
		mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&adapter.GraphQLError{Errors: []models.GraphQLError{{Message: "Task not found"}}}),
	)

	ok, err := svc.TaskService.Delete(context.Background(), authedSession(), "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.TaskService.Delete(context.Background(), authedSession(), "2")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.TaskService.Delete(context.Background(), authedSession(), "3")
	require.ErrorIs(t, err, adapter.ErrGraphQL)
	assert.False(t, ok)

	assert.EqualValues(t, 1, outcomeCount(t, metrics, "task.delete", instrumentation.OutcomeOK))
	assert.EqualValues(t, 1, outcomeCount(t, metrics, "task.delete", instrumentation.OutcomeRejected))
	assert.EqualValues(t, 1, outcomeCount(t, metrics, "task.delete", instrumentation.OutcomeGraphQL))
}

// ── transport ────────────────────────────────────────────────────────────────

func TestServices_TransportFailureEveryOperation(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)
	ctx := context.Background()
	sess := authedSession()

	mockAdapter.EXPECT().GraphQL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errRefused).Times(6)
	mockAdapter.EXPECT().Health(gomock.Any()).Return(models.HealthStatus{}, errRefused)
	mockAdapter.EXPECT().Metrics(gomock.Any()).Return(models.MetricsIndex{}, errRefused)

	_, err := svc.TaskService.List(ctx, sess)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	_, err = svc.TaskService.Get(ctx, sess, "1")
	assert.ErrorIs(t, err, adapter.ErrTransport)
	_, err = svc.TaskService.Create(ctx, sess, NewCreateTaskInput("t", "d"))
	assert.ErrorIs(t, err, adapter.ErrTransport)
	_, err = svc.TaskService.Update(ctx, sess, "1", models.UpdateTaskInput{})
	assert.ErrorIs(t, err, adapter.ErrTransport)
	ok, err := svc.TaskService.Delete(ctx, sess, "1")
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.False(t, ok)
	_, err = svc.UserService.List(ctx, sess)
	assert.ErrorIs(t, err, adapter.ErrTransport)

	up, _, err := svc.MonitorService.Health(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.False(t, up)
	_, err = svc.MonitorService.Metrics(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)

	assert.True(t, sess.Authenticated(), "failures never touch the session")
}
