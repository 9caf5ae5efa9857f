package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMonitorService_Health(t *testing.T) {
	tests := []struct {
		name       string
		status     models.HealthStatus
		err        error
		wantUp     bool
		wantStatus string
		wantErr    bool
	}{
		{name: "up", status: models.HealthStatus{Status: "UP"}, wantUp: true, wantStatus: "UP"},
		{name: "down", status: models.HealthStatus{Status: "DOWN"}, wantStatus: "DOWN"},
		{name: "missing status", status: models.HealthStatus{}, wantStatus: "UNKNOWN"},
		{name: "http 503", err: &adapter.StatusError{Code: 503}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter, _ := newTestServices(t)
			mockAdapter.EXPECT().Health(gomock.Any()).Return(tt.status, tt.err)

			up, status, err := svc.MonitorService.Health(context.Background())

			assert.Equal(t, tt.wantUp, up)
			if tt.wantErr {
				assert.ErrorIs(t, err, adapter.ErrUnexpectedStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status.Status)
		})
	}
}

func TestMonitorService_Metrics(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)
	mockAdapter.EXPECT().Metrics(gomock.Any()).Return(models.MetricsIndex{Names: []string{"a", "b"}}, nil)

	idx, err := svc.MonitorService.Metrics(context.Background())

	require.NoError(t, err)
	assert.Len(t, idx.Names, 2)
}

func TestUserService_List(t *testing.T) {
	svc, mockAdapter, _ := newTestServices(t)
	mockAdapter.EXPECT().GraphQL(gomock.Any(), "tok", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, req models.GraphQLRequest, out any) error {
			assert.Contains(t, req.Query, "assignedTasks")
			return graphQLReply(t, `{"users":[{"id":"1","username":"alice","email":"a@test.com","assignedTasks":[{"id":"4","title":"x"}]}]}`)(ctx, token, req, out)
		})

	users, err := svc.UserService.List(context.Background(), authedSession())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Len(t, users[0].AssignedTasks, 1)
	assert.Equal(t, models.TaskID("4"), users[0].AssignedTasks[0].ID)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "ok", string(outcomeOf(nil)))
	assert.Equal(t, "not_found", string(outcomeOf(ErrTaskNotFound)))
	assert.Equal(t, "http", string(outcomeOf(&adapter.StatusError{Code: 500})))
	assert.Equal(t, "graphql", string(outcomeOf(&adapter.GraphQLError{})))
	assert.Equal(t, "decode", string(outcomeOf(adapter.ErrDecode)))
	assert.Equal(t, "transport", string(outcomeOf(errRefused)))
	assert.Equal(t, "rejected", string(outcomeOf(ErrEmptyResult)))
}
