package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("text2sql"))
	sb.WriteString(dimStyle.Render("  model: " + m.opts.Model))
	sb.WriteString("\n\n")

	sb.WriteString(m.historyView())

	if m.running {
		fmt.Fprintf(&sb, "%s translating %q...\n\n", m.spinner.View(), m.pending)
	}

	if m.status != "" {
		sb.WriteString(warningStyle.Render(m.status))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("enter send · ↑/↓ scroll · esc quit"))
	return sb.String()
}

// historyView renders the chat transcript, keeping the tail visible and
// letting ↑/↓ scroll back by whole lines.
func (m Model) historyView() string {
	var sb strings.Builder
	for _, e := range m.history {
		sb.WriteString(promptStyle.Render("you: "+e.Request) + "\n")
		if e.Err != nil {
			sb.WriteString(errorStyle.Render("error: "+e.Err.Error()) + "\n\n")
			continue
		}
		sb.WriteString(sqlStyle.Render(e.SQL) + "\n")
		sb.WriteString(e.Result + "\n\n")
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return dimStyle.Render("No questions yet.") + "\n\n"
	}

	avail := m.height - 8 // header, spinner, status, input, hint
	if avail < 3 {
		avail = 3
	}
	end := len(lines) - m.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 1 {
		end = 1
	}
	start := end - avail
	if start < 0 {
		start = 0
	}
	return strings.Join(lines[start:end], "\n") + "\n\n"
}
