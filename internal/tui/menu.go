package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// Menu choices, numbered as shown to the user.
const (
	choiceExit = iota
	choiceRegister
	choiceLogin
	choiceLogout
	choiceListTasks
	choiceGetTask
	choiceCreateTask
	choiceUpdateTask
	choiceDeleteTask
	choiceListUsers
	choiceHealth
	choiceMetrics
	choiceScenario
	choiceSession
)

// maxChoiceDigits bounds the typed choice buffer.
const maxChoiceDigits = 2

type menuItem struct {
	choice  int
	label   string
	section string
}

var menuItems = []menuItem{
	{choiceRegister, "Register new user", "Auth"},
	{choiceLogin, "Login", "Auth"},
	{choiceLogout, "Logout", "Auth"},
	{choiceListTasks, "Get all tasks", "Tasks"},
	{choiceGetTask, "Get task by ID", "Tasks"},
	{choiceCreateTask, "Create task", "Tasks"},
	{choiceUpdateTask, "Update task", "Tasks"},
	{choiceDeleteTask, "Delete task", "Tasks"},
	{choiceListUsers, "Get all users", "Users"},
	{choiceHealth, "Check application health", "Monitoring"},
	{choiceMetrics, "Get metrics overview", "Monitoring"},
	{choiceScenario, "Run complete test scenario", "Testing"},
	{choiceSession, "Show current user info", "Other"},
	{choiceExit, "Exit", "Other"},
}

// parseChoice maps typed digits to a menu choice.
func parseChoice(digits string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || n < choiceExit || n > choiceSession {
		return 0, false
	}
	return n, true
}

func renderMenu(cursor int, digits string) string {
	var b strings.Builder

	section := ""
	for i, item := range menuItems {
		if item.section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = item.section
			b.WriteString(sectionStyle.Render(section + ":"))
			b.WriteString("\n")
		}

		marker := "  "
		line := fmt.Sprintf("%2d. %s", item.choice, item.label)
		if i == cursor {
			marker = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nEnter your choice (0-13): ")
	b.WriteString(digits)
	return b.String()
}
