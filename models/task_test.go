package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TaskID
	}{
		{"string id", `"42"`, "42"},
		{"numeric id", `42`, "42"},
		{"null id", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id TaskID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestTaskID_UnmarshalJSON_Invalid(t *testing.T) {
	var id TaskID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID(" 17 ")
	require.NoError(t, err)
	assert.Equal(t, TaskID("17"), id)

	for _, bad := range []string{"", "abc", "1.5", "12a"} {
		_, err = ParseTaskID(bad)
		assert.ErrorIs(t, err, ErrInvalidTaskID, bad)
	}
}

func TestCreateTaskInput_OmitsAbsentOptionals(t *testing.T) {
	raw, err := json.Marshal(CreateTaskInput{Title: "t", Description: "d"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","description":"d","completed":false}`, string(raw))
}

func TestUpdateTaskInput_Empty(t *testing.T) {
	in := UpdateTaskInput{}
	assert.True(t, in.IsEmpty())

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))

	done := true
	raw, err = json.Marshal(UpdateTaskInput{Completed: &done})
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":true}`, string(raw))
}

func TestTask_DecodeFromServer(t *testing.T) {
	body := `{
		"id": "5",
		"title": "Review code changes",
		"description": "Review and approve pending code changes",
		"completed": false,
		"status": "IN_PROGRESS",
		"dueDate": null,
		"estimationHours": 4.0,
		"createdAt": "2024-05-01T10:00:00Z",
		"updatedAt": null,
		"assignedUsers": [{"id": "1", "username": "alice"}, {"id": "2", "username": "bob"}]
	}`

	var task Task
	require.NoError(t, json.Unmarshal([]byte(body), &task))

	assert.Equal(t, TaskID("5"), task.ID)
	assert.Equal(t, TaskStatusInProgress, task.Status)
	assert.Nil(t, task.DueDate)
	require.NotNil(t, task.EstimationHours)
	assert.InDelta(t, 4.0, *task.EstimationHours, 0.0001)
	assert.Equal(t, []string{"alice", "bob"}, task.AssigneeNames())

	created, ok := task.Created()
	require.True(t, ok)
	assert.Equal(t, 2024, created.Year())
}

func TestTask_Created_LocalLayout(t *testing.T) {
	_, ok := Task{CreatedAt: "2024-05-01T10:00:00.123"}.Created()
	assert.True(t, ok)

	_, ok = Task{CreatedAt: "yesterday"}.Created()
	assert.False(t, ok)
}
