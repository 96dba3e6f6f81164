package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == stateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("habitflow · %s", m.user.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.habits.View())
	b.WriteString("\n")

	if m.quoteLoading {
		b.WriteString(quoteStyle.Render(m.spinner.View() + " thinking of something encouraging..."))
		b.WriteString("\n")
	} else if m.quote != "" {
		b.WriteString(quoteStyle.Render(m.quote))
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString(m.statusMsg)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}
