package tui

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/satyammistari/text2sql-ai/internal/reporter"
)

type turnDoneMsg struct{ entry Entry }
type dbChangedMsg struct{}
type watchErrMsg struct{ err error }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.scroll++
			return m, nil
		case "down":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		case "enter":
			req := strings.TrimSpace(m.input.Value())
			if req == "" || m.running {
				return m, nil
			}
			m.running = true
			m.pending = req
			m.scroll = 0
			m.status = ""
			m.input.Reset()
			return m, tea.Batch(m.runTurn(req), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.running {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case turnDoneMsg:
		m.running = false
		m.pending = ""
		m.history = append(m.history, msg.entry)

	case dbChangedMsg:
		m.status = "database changed on disk — the next request reads the fresh schema"
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher))
		}

	case watchErrMsg:
		m.status = "file watch error: " + msg.err.Error()
		// Keep watching; a transient error must not end the watch for
		// the rest of the session.
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher))
		}
	}

	// Cursor blink and other component messages still reach the input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runTurn drives one pipeline request off the UI goroutine. The running
// guard in Update keeps at most one turn in flight, which serializes all
// access to the shared connection.
func (m Model) runTurn(req string) tea.Cmd {
	p := m.opts.Pipeline
	return func() tea.Msg {
		turn, err := p.Run(context.Background(), req)
		if err != nil {
			return turnDoneMsg{Entry{Request: req, Err: err}}
		}
		var buf bytes.Buffer
		reporter.RenderResult(&buf, turn.Result)
		return turnDoneMsg{Entry{
			Request: req,
			SQL:     turn.SQL,
			Result:  strings.TrimRight(buf.String(), "\n"),
		}}
	}
}
