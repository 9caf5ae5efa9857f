package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/client"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	appTitle    = "🚀 TASK MANAGER CLI CLIENT"
	appSubtitle = "A simple client to test your Task Manager GraphQL API"
	noticeTTL   = 2 * time.Second
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenConfirm
	screenBusy
	screenAbout
)

type model struct {
	ctx       context.Context
	client    *client.Client
	newRunner RunnerFactory
	copy      func(string) error
	now       func() time.Time
	buildInfo models.AppBuildInfo

	screen  screen
	cursor  int
	digits  string
	form    form
	pending models.TaskID

	spinner    spinner.Model
	output     viewport.Model
	lastOutput string
	status     string
	notice     string
}

func newModel(ctx context.Context, t *TUI) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		client:    t.client,
		newRunner: t.newRunner,
		copy:      t.copy,
		now:       t.now,
		buildInfo: t.buildInfo,
		spinner:   s,
		output:    viewport.New(80, 12),
		status:    statusLine(t.client.Session()),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.output.Width = max(msg.Width-6, 20)
		m.output.Height = max(msg.Height-32, 5)
		return m, nil
	case actionDoneMsg:
		m.screen = screenMenu
		m.setOutput(msg.output)
		m.status = statusLine(m.client.Session())
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.notice = failLine(fmt.Sprintf(app.MsgCopyFailed, msg.err))
		} else {
			m.notice = app.IconOK + " " + app.MsgTokenCopied
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenAbout:
		return m.updateAbout(msg)
	case screenBusy:
		return m, nil
	}
	return m.updateMenu(msg)
}

func (m model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.digits = ""
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
		m.digits = ""
	case key.Matches(keyMsg, keys.enter):
		return m.submitChoice()
	case key.Matches(keyMsg, keys.back):
		if m.digits != "" {
			m.digits = m.digits[:len(m.digits)-1]
		}
	case key.Matches(keyMsg, keys.copy):
		return m.copyToken()
	case key.Matches(keyMsg, keys.version):
		m.screen = screenAbout
	case key.Matches(keyMsg, keys.pageUp), key.Matches(keyMsg, keys.pageDown):
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(keyMsg)
		return m, cmd
	default:
		m.digits = appendDigits(m.digits, keyMsg)
	}
	return m, nil
}

// appendDigits adds the digits of a rune burst to buf, keeping at most two.
// Pasted or fast-typed input arrives as a single KeyRunes message.
func appendDigits(buf string, msg tea.KeyMsg) string {
	if msg.Type != tea.KeyRunes {
		return buf
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			continue
		}
		if len(buf) == maxChoiceDigits {
			break
		}
		buf += string(r)
	}
	return buf
}

func (m model) submitChoice() (tea.Model, tea.Cmd) {
	choice := menuItems[m.cursor].choice
	if m.digits != "" {
		n, ok := parseChoice(m.digits)
		m.digits = ""
		if !ok {
			return m.reject(app.MsgInvalidChoice)
		}
		choice = n
		for i, item := range menuItems {
			if item.choice == n {
				m.cursor = i
			}
		}
	}
	return m.choose(choice)
}

func (m model) choose(choice int) (tea.Model, tea.Cmd) {
	switch choice {
	case choiceExit:
		return m, tea.Quit
	case choiceLogout:
		return m.run(logoutAction(m.client))
	case choiceListTasks:
		return m.run(listTasksAction(m.client, m.now))
	case choiceListUsers:
		return m.run(listUsersAction(m.client))
	case choiceHealth:
		return m.run(healthAction(m.client))
	case choiceMetrics:
		return m.run(metricsAction(m.client))
	case choiceScenario:
		return m.run(scenarioAction(m.newRunner))
	case choiceSession:
		m.setOutput(renderSession(m.client.Session(), m.now()))
		return m, nil
	}

	f, ok := formFor(choice)
	if !ok {
		return m.reject(app.MsgInvalidChoice)
	}
	m.form = f
	m.screen = screenForm
	return m, textinput.Blink
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.next):
			m.form = m.form.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.form = m.form.move(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.form.last() {
				m.form = m.form.move(1)
				return m, nil
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm validates the typed values. Malformed input is reported without
// calling the service.
func (m model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form

	switch f.choice {
	case choiceRegister:
		return m.run(registerAction(m.client, registerRequest(f)))
	case choiceLogin:
		return m.run(loginAction(m.client, f.value(0), f.raw(1)))
	case choiceGetTask:
		id, err := models.ParseTaskID(f.value(0))
		if err != nil {
			return m.reject(app.MsgInvalidTaskID)
		}
		return m.run(getTaskAction(m.client, id))
	case choiceCreateTask:
		input, err := createTaskInput(f)
		if err != nil {
			return m.reject(err.Error())
		}
		return m.run(createTaskAction(m.client, input))
	case choiceUpdateTask:
		id, input, err := updateTaskInput(f)
		if err != nil {
			return m.reject(err.Error())
		}
		return m.run(updateTaskAction(m.client, id, input))
	case choiceDeleteTask:
		id, err := models.ParseTaskID(f.value(0))
		if err != nil {
			return m.reject(app.MsgInvalidTaskID)
		}
		m.pending = id
		m.screen = screenConfirm
		return m, nil
	}

	m.screen = screenMenu
	return m, nil
}

func (m model) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
			m.screen = screenMenu
		}
	}
	return m, nil
}

func (m model) run(fn action) (tea.Model, tea.Cmd) {
	m.screen = screenBusy
	return m, tea.Batch(m.spinner.Tick, cmdRun(m.ctx, m.client, fn))
}

func (m model) reject(msg string) (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.setOutput(failLine(msg))
	return m, nil
}

func (m model) copyToken() (tea.Model, tea.Cmd) {
	s := m.client.Session()
	if !s.Authenticated() {
		m.notice = failLine(app.MsgNothingToCopy)
		return m, cmdClearStatus()
	}

	copyFn, token := m.copy, s.Token
	return m, func() tea.Msg {
		return copiedMsg{err: copyFn(token)}
	}
}

func (m *model) setOutput(out string) {
	m.lastOutput = strings.TrimRight(out, "\n")
	m.output.SetContent(m.lastOutput)
	m.output.GotoTop()
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m model) View() string {
	switch m.screen {
	case screenForm:
		return m.form.view()
	case screenConfirm:
		return confirmView(m.pending)
	case screenAbout:
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60))
	b.WriteString("\n")
	b.WriteString(appSubtitle)
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n📋 MAIN MENU:\n")
	b.WriteString(renderMenu(m.cursor, m.digits))

	if m.screen == screenBusy {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Working...")
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(m.notice)
	}
	if m.lastOutput != "" {
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(m.output.View()))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ or digits: choose | enter: run | c: copy token | v: about | pgup/pgdown: scroll | ctrl+c: exit"))
	return b.String()
}
