package fakeserver

import (
	"strconv"
	"time"

	"github.com/MKhiriev/task-manager-client/models"
)

type storedTask struct {
	id              int64
	title           string
	description     string
	completed       bool
	status          models.TaskStatus
	dueDate         *string
	estimationHours *float64
	createdAt       time.Time
	updatedAt       time.Time
	assignees       []*account
}

// createTask must be called with s.mu held.
func (s *Server) createTask(in models.CreateTaskInput) *storedTask {
	now := time.Now().UTC()
	t := &storedTask{
		id:              s.nextTask,
		title:           in.Title,
		description:     in.Description,
		completed:       in.Completed,
		status:          statusOf(in.Completed),
		dueDate:         in.DueDate,
		estimationHours: in.EstimationHours,
		createdAt:       now,
		updatedAt:       now,
	}
	for _, userID := range in.AssignedUserIDs {
		for _, acc := range s.accounts {
			if acc.user.ID == userID {
				t.assignees = append(t.assignees, acc)
			}
		}
	}

	s.tasks[t.id] = t
	s.order = append(s.order, t.id)
	s.nextTask++
	return t
}

// updateTask must be called with s.mu held.
func (s *Server) updateTask(id int64, in models.UpdateTaskInput) (*storedTask, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, false
	}

	if in.Title != nil {
		t.title = *in.Title
	}
	if in.Description != nil {
		t.description = *in.Description
	}
	if in.Completed != nil {
		t.completed = *in.Completed
		t.status = statusOf(t.completed)
	}
	if in.DueDate != nil {
		t.dueDate = in.DueDate
	}
	if in.EstimationHours != nil {
		t.estimationHours = in.EstimationHours
	}
	t.updatedAt = time.Now().UTC()
	return t, true
}

// deleteTask must be called with s.mu held.
func (s *Server) deleteTask(id int64) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

func (s *Server) render(t *storedTask) models.Task {
	out := models.Task{
		ID:              models.TaskIDFromInt(t.id),
		Title:           t.title,
		Description:     t.description,
		Completed:       t.completed,
		Status:          t.status,
		DueDate:         t.dueDate,
		EstimationHours: t.estimationHours,
		CreatedAt:       t.createdAt.Format(time.RFC3339),
		UpdatedAt:       t.updatedAt.Format(time.RFC3339),
		AssignedUsers:   []models.UserRef{},
	}
	for _, acc := range t.assignees {
		out.AssignedUsers = append(out.AssignedUsers, models.UserRef{ID: acc.user.ID, Username: acc.user.Username})
	}
	return out
}

// users must be called with s.mu held.
func (s *Server) users() []models.User {
	out := make([]models.User, 0, len(s.accounts))
	for _, acc := range s.accounts {
		u := acc.user
		u.AssignedTasks = []models.TaskRef{}
		for _, id := range s.order {
			t, ok := s.tasks[id]
			if !ok {
				continue
			}
			for _, assignee := range t.assignees {
				if assignee == acc {
					u.AssignedTasks = append(u.AssignedTasks, models.TaskRef{ID: models.TaskIDFromInt(t.id), Title: t.title})
				}
			}
		}
		out = append(out, u)
	}
	return out
}

func statusOf(completed bool) models.TaskStatus {
	if completed {
		return models.TaskStatusDone
	}
	return models.TaskStatusTodo
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}
