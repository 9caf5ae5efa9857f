package tui

// actionDoneMsg carries everything an action printed.
type actionDoneMsg struct {
	output string
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
