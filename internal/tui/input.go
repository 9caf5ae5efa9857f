package tui

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/service"
	"github.com/MKhiriev/task-manager-client/models"
)

var (
	errInvalidHours = errors.New(app.MsgInvalidHours)
	errInvalidDate  = errors.New(app.MsgInvalidDate)
)

// parseHours reads an optional finite, non-negative estimate. Empty input
// yields nil.
func parseHours(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil || h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, errInvalidHours
	}
	return &h, nil
}

// parseDueDate reads an optional YYYY-MM-DD date. Empty input yields nil.
func parseDueDate(raw string) (*string, error) {
	if raw == "" {
		return nil, nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return nil, errInvalidDate
	}
	return &raw, nil
}

// parseCompleted accepts true/t/yes/y and false/f/no/n. Anything else leaves
// the field unchanged.
func parseCompleted(raw string) *bool {
	var v bool
	switch strings.ToLower(raw) {
	case "true", "t", "yes", "y":
		v = true
	case "false", "f", "no", "n":
		v = false
	default:
		return nil
	}
	return &v
}

func registerRequest(f form) models.RegisterRequest {
	return models.RegisterRequest{
		Username:  f.value(0),
		Email:     f.value(1),
		FirstName: f.value(2),
		LastName:  f.value(3),
		Password:  f.raw(4),
	}
}

func createTaskInput(f form) (models.CreateTaskInput, error) {
	var opts []service.CreateTaskOption

	due, err := parseDueDate(f.value(2))
	if err != nil {
		return models.CreateTaskInput{}, err
	}
	if due != nil {
		opts = append(opts, service.WithDueDate(*due))
	}

	hours, err := parseHours(f.value(3))
	if err != nil {
		return models.CreateTaskInput{}, err
	}
	if hours != nil {
		opts = append(opts, service.WithEstimationHours(*hours))
	}

	return service.NewCreateTaskInput(f.value(0), f.value(1), opts...), nil
}

// updateTaskInput returns the id and the fields to change. A malformed id or
// estimate is reported as one combined message.
func updateTaskInput(f form) (models.TaskID, models.UpdateTaskInput, error) {
	id, err := models.ParseTaskID(f.value(0))
	if err != nil {
		return "", models.UpdateTaskInput{}, errors.New(app.MsgInvalidTaskInput)
	}

	var in models.UpdateTaskInput
	if v := f.value(1); v != "" {
		in.Title = &v
	}
	if v := f.value(2); v != "" {
		in.Description = &v
	}
	in.Completed = parseCompleted(f.value(3))

	if in.DueDate, err = parseDueDate(f.value(4)); err != nil {
		return "", models.UpdateTaskInput{}, err
	}
	if in.EstimationHours, err = parseHours(f.value(5)); err != nil {
		return "", models.UpdateTaskInput{}, errors.New(app.MsgInvalidTaskInput)
	}
	return id, in, nil
}
