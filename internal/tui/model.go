package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/fsnotify/fsnotify"

	"github.com/satyammistari/text2sql-ai/internal/pipeline"
)

// Options configures the chat UI.
type Options struct {
	Pipeline *pipeline.Pipeline
	// Model is shown in the header so the user knows which model answers.
	Model string
	// WatchPath, when non-empty, is the database file to watch for outside
	// changes. Empty for server-backed databases.
	WatchPath string
}

// Entry is one completed chat turn.
type Entry struct {
	Request string
	SQL     string
	Result  string // pre-rendered result block
	Err     error  // pipeline error (schema or completion API)
}

type Model struct {
	opts    Options
	input   textinput.Model
	spinner spinner.Model

	history []Entry
	running bool
	pending string // request currently in flight

	watcher *fsnotify.Watcher

	width  int
	height int
	scroll int
	status string
}

// NewModel builds the initial chat state. A watcher failure only degrades
// the change notice, so it is reported in the status line, not fatal.
func NewModel(opts Options) Model {
	in := textinput.New()
	in.Placeholder = "Ask in plain language, e.g. list all tracks"
	in.Focus()
	in.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		opts:    opts,
		input:   in,
		spinner: sp,
	}
	if opts.WatchPath != "" {
		w, err := newWatcher(opts.WatchPath)
		if err != nil {
			m.status = "file watch unavailable: " + err.Error()
		} else {
			m.watcher = w
		}
	}
	return m
}

func (m Model) closeWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}
