package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/models"
)

type userService struct {
	*base
}

func NewUserService(taskManager adapter.TaskManagerAdapter, metrics *instrumentation.Metrics, log *logger.Logger) UserService {
	return &userService{base: newBase(taskManager, metrics, log)}
}

func (s *userService) List(ctx context.Context, sess *models.Session) ([]models.User, error) {
	ctx, c := s.begin(ctx, "user.list")

	var data struct {
		Users []models.User `json:"users"`
	}
	if err := s.adapter.GraphQL(ctx, sess.Token, models.GraphQLRequest{Query: queryUsers}, &data); err != nil {
		return nil, c.end(fmt.Errorf("list users: %w", err))
	}

	if data.Users == nil {
		data.Users = []models.User{}
	}
	return data.Users, c.end(nil)
}
