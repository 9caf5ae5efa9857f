// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTaskID is returned by [ParseTaskID] for non-numeric input.
var ErrInvalidTaskID = errors.New("invalid task id")

// TaskID is the GraphQL ID of a task. The server sends it as a string, but
// numeric JSON values are accepted too.
type TaskID string

// ParseTaskID validates user input as a task id.
func ParseTaskID(raw string) (TaskID, error) {
	raw = strings.TrimSpace(raw)
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTaskID, raw)
	}
	return TaskID(raw), nil
}

// TaskIDFromInt converts a numeric id.
func TaskIDFromInt(id int64) TaskID {
	return TaskID(strconv.FormatInt(id, 10))
}

func (id TaskID) String() string { return string(id) }

// IsZero reports whether the id is absent.
func (id TaskID) IsZero() bool { return id == "" }

func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(n.String())
	return nil
}

// TaskStatus is the server-side workflow state. Values outside the known set
// are preserved as received.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// UserRef is the compact user projection embedded in tasks.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Task mirrors the fields requested by the task queries.
type Task struct {
	ID              TaskID     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Completed       bool       `json:"completed"`
	Status          TaskStatus `json:"status"`
	DueDate         *string    `json:"dueDate"`
	EstimationHours *float64   `json:"estimationHours"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
	AssignedUsers   []UserRef  `json:"assignedUsers"`
}

// AssigneeNames returns the usernames of assigned users in server order.
func (t Task) AssigneeNames() []string {
	names := make([]string, 0, len(t.AssignedUsers))
	for _, u := range t.AssignedUsers {
		names = append(names, u.Username)
	}
	return names
}

// Created parses CreatedAt. ok is false when the value is absent or not a
// recognised timestamp.
func (t Task) Created() (time.Time, bool) {
	return parseTimestamp(t.CreatedAt)
}

// CreateTaskInput is the createTask mutation input. Completed is always sent;
// optional fields are omitted rather than sent as null.
type CreateTaskInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Completed       bool     `json:"completed"`
	DueDate         *string  `json:"dueDate,omitempty"`
	EstimationHours *float64 `json:"estimationHours,omitempty"`
	AssignedUserIDs []string `json:"assignedUserIds,omitempty"`
}

// UpdateTaskInput is the updateTask mutation input. Only set fields are sent.
type UpdateTaskInput struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Completed       *bool    `json:"completed,omitempty"`
	DueDate         *string  `json:"dueDate,omitempty"`
	EstimationHours *float64 `json:"estimationHours,omitempty"`
}

// IsEmpty reports whether no field is set.
func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Completed == nil &&
		in.DueDate == nil && in.EstimationHours == nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
