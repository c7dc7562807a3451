package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var fieldLabels = [fieldCount]string{
	fieldTitle:     "Video title",
	fieldVideo:     "Video file",
	fieldThumbnail: "Thumbnail image",
	fieldPrompt:    "AI prompt",
}

func (s *Screen) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Upload Video"))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		cursor := "  "
		style := labelStyle
		if i == s.focus {
			cursor = "> "
			style = focusStyle
		}
		b.WriteString(cursor + style.Render(fieldLabels[i]) + ": " + s.field[i])
		if i == s.focus {
			b.WriteString("_")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.statusLine())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: next field • enter: submit & publish • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (s *Screen) statusLine() string {
	switch s.state {
	case stateUploading:
		return okStyle.Render("Uploading media...")
	case stateCreatingRecord:
		return okStyle.Render("Creating post...")
	case stateDone:
		return okStyle.Render(s.alert)
	}
	if s.alert != "" {
		return alertStyle.Render(s.alert)
	}
	if s.user != nil {
		return helpStyle.Render("Signed in as " + s.user.Username)
	}
	return ""
}
