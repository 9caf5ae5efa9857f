package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDividerWidth = 54

var divider = helpStyle.Render(strings.Repeat("─", uiDividerWidth))

// renderPage lays out a titled screen with its body indented and the key
// hints below.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{
		titleStyle.Render(title),
		divider,
		"",
		lipgloss.NewStyle().PaddingLeft(2).Render(body),
		"",
		divider,
	}
	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, helpStyle.Render(hotKeys))
	}
	parts = append(parts, helpStyle.Render("ctrl+c: exit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func valueOrNotSet(v *string) string {
	if v == nil || *v == "" {
		return "Not set"
	}
	return *v
}
