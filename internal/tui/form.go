package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldSpec struct {
	label  string
	secret bool
}

type form struct {
	choice int
	title  string
	note   string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(choice int, title, note string, fields ...fieldSpec) form {
	f := form{
		choice: choice,
		title:  title,
		note:   note,
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, spec := range fields {
		f.labels[i] = spec.label
		f.inputs[i] = textinput.New()
		f.inputs[i].Prompt = ""
		if spec.secret {
			f.inputs[i].EchoMode = textinput.EchoPassword
		}
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func formFor(choice int) (form, bool) {
	switch choice {
	case choiceRegister:
		return newForm(choice, "REGISTER", "",
			fieldSpec{label: "Username"},
			fieldSpec{label: "Email"},
			fieldSpec{label: "First Name"},
			fieldSpec{label: "Last Name"},
			fieldSpec{label: "Password", secret: true},
		), true
	case choiceLogin:
		return newForm(choice, "LOGIN", "",
			fieldSpec{label: "Username"},
			fieldSpec{label: "Password", secret: true},
		), true
	case choiceGetTask:
		return newForm(choice, "GET TASK", "", fieldSpec{label: "Task ID"}), true
	case choiceCreateTask:
		return newForm(choice, "CREATE TASK", "",
			fieldSpec{label: "Task title"},
			fieldSpec{label: "Task description"},
			fieldSpec{label: "Due date (YYYY-MM-DD, optional)"},
			fieldSpec{label: "Estimation hours (optional)"},
		), true
	case choiceUpdateTask:
		return newForm(choice, "UPDATE TASK", "Leave fields empty to keep current values:",
			fieldSpec{label: "Task ID to update"},
			fieldSpec{label: "New title"},
			fieldSpec{label: "New description"},
			fieldSpec{label: "Completed (true/false)"},
			fieldSpec{label: "New due date (YYYY-MM-DD)"},
			fieldSpec{label: "New estimation hours"},
		), true
	case choiceDeleteTask:
		return newForm(choice, "DELETE TASK", "", fieldSpec{label: "Task ID to delete"}), true
	}
	return form{}, false
}

func (f form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// raw returns the field without trimming; passwords are sent as typed.
func (f form) raw(i int) string {
	return f.inputs[i].Value()
}

func (f form) last() bool {
	return f.focus == len(f.inputs)-1
}

func (f form) move(delta int) form {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f form) view() string {
	var b strings.Builder
	if f.note != "" {
		b.WriteString(f.note)
		b.WriteString("\n\n")
	}
	for i, in := range f.inputs {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(f.labels[i])
		b.WriteString(": ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "tab/shift+tab: move | enter: next/submit | esc: cancel")
}
