package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/instrumentation"
	"github.com/MKhiriev/task-manager-client/internal/logger"
	"github.com/MKhiriev/task-manager-client/models"
)

type taskService struct {
	*base
}

func NewTaskService(taskManager adapter.TaskManagerAdapter, metrics *instrumentation.Metrics, log *logger.Logger) TaskService {
	return &taskService{base: newBase(taskManager, metrics, log)}
}

func (s *taskService) List(ctx context.Context, sess *models.Session) ([]models.Task, error) {
	ctx, c := s.begin(ctx, "task.list")

	var data struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := s.adapter.GraphQL(ctx, sess.Token, models.GraphQLRequest{Query: queryTasks}, &data); err != nil {
		return nil, c.end(fmt.Errorf("list tasks: %w", err))
	}

	if data.Tasks == nil {
		data.Tasks = []models.Task{}
	}
	return data.Tasks, c.end(nil)
}

func (s *taskService) Get(ctx context.Context, sess *models.Session, id models.TaskID) (models.Task, error) {
	ctx, c := s.begin(ctx, "task.get")

	var data struct {
		Task *models.Task `json:"task"`
	}
	req := models.GraphQLRequest{Query: queryTask, Variables: map[string]any{"id": id.String()}}
	if err := s.adapter.GraphQL(ctx, sess.Token, req, &data); err != nil {
		return models.Task{}, c.end(fmt.Errorf("get task %s: %w", id, err))
	}
	if data.Task == nil {
		return models.Task{}, c.end(fmt.Errorf("%w: %s", ErrTaskNotFound, id))
	}

	return *data.Task, c.end(nil)
}

func (s *taskService) Create(ctx context.Context, sess *models.Session, input models.CreateTaskInput) (models.Task, error) {
	ctx, c := s.begin(ctx, "task.create")

	var data struct {
		CreateTask *models.Task `json:"createTask"`
	}
	req := models.GraphQLRequest{Query: mutationCreateTask, Variables: map[string]any{"input": input}}
	if err := s.adapter.GraphQL(ctx, sess.Token, req, &data); err != nil {
		return models.Task{}, c.end(fmt.Errorf("create task: %w", err))
	}
	if data.CreateTask == nil {
		return models.Task{}, c.end(fmt.Errorf("create task: %w", ErrEmptyResult))
	}

	return *data.CreateTask, c.end(nil)
}

func (s *taskService) Update(ctx context.Context, sess *models.Session, id models.TaskID, input models.UpdateTaskInput) (models.Task, error) {
	ctx, c := s.begin(ctx, "task.update")

	var data struct {
		UpdateTask *models.Task `json:"updateTask"`
	}
	req := models.GraphQLRequest{
		Query:     mutationUpdateTask,
		Variables: map[string]any{"id": id.String(), "input": input},
	}
	if err := s.adapter.GraphQL(ctx, sess.Token, req, &data); err != nil {
		return models.Task{}, c.end(fmt.Errorf("update task %s: %w", id, err))
	}
	if data.UpdateTask == nil {
		return models.Task{}, c.end(fmt.Errorf("update task: %w", ErrEmptyResult))
	}

	return *data.UpdateTask, c.end(nil)
}

func (s *taskService) Delete(ctx context.Context, sess *models.Session, id models.TaskID) (bool, error) {
	ctx, c := s.begin(ctx, "task.delete")

	var data struct {
		DeleteTask bool `json:"deleteTask"`
	}
	req := models.GraphQLRequest{Query: mutationDeleteTask, Variables: map[string]any{"id": id.String()}}
	if err := s.adapter.GraphQL(ctx, sess.Token, req, &data); err != nil {
		return false, c.end(fmt.Errorf("delete task %s: %w", id, err))
	}

	if !data.DeleteTask {
		c.finish(instrumentation.OutcomeRejected, nil)
		return false, nil
	}
	return true, c.end(nil)
}
