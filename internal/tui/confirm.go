package tui

import (
	"fmt"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// updateConfirm deletes the pending task on y; any other key cancels.
func (m model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	id := m.pending
	m.pending = ""
	if key.Matches(keyMsg, keys.yes) {
		return m.run(deleteTaskAction(m.client, id))
	}

	m.screen = screenMenu
	m.setOutput(app.MsgDeletionCancelled)
	return m, nil
}

func confirmView(id models.TaskID) string {
	return renderPage("DELETE TASK",
		fmt.Sprintf("Are you sure you want to delete task %s? (y/N): ", id),
		"y: delete | any other key: cancel")
}
