package service

import "github.com/MKhiriev/task-manager-client/models"

// CreateTaskOption sets an optional field of [models.CreateTaskInput].
type CreateTaskOption func(*models.CreateTaskInput)

// WithDueDate sets the due date (YYYY-MM-DD).
func WithDueDate(date string) CreateTaskOption {
	return func(in *models.CreateTaskInput) { in.DueDate = &date }
}

// WithEstimationHours sets the estimate.
func WithEstimationHours(hours float64) CreateTaskOption {
	return func(in *models.CreateTaskInput) { in.EstimationHours = &hours }
}

// WithAssignees sets the assigned user ids. An empty list is ignored.
func WithAssignees(userIDs ...string) CreateTaskOption {
	return func(in *models.CreateTaskInput) {
		if len(userIDs) > 0 {
			in.AssignedUserIDs = userIDs
		}
	}
}

// NewCreateTaskInput builds a create payload. Without options it serialises
// to exactly {title, description, completed:false}.
func NewCreateTaskInput(title, description string, opts ...CreateTaskOption) models.CreateTaskInput {
	in := models.CreateTaskInput{Title: title, Description: description}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
