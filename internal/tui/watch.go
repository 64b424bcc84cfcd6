package tui

import (
	"github.com/fsnotify/fsnotify"

	tea "github.com/charmbracelet/bubbletea"
)

// newWatcher watches the database file for writes by other processes.
// The schema is re-read on every request anyway; the watch only feeds the
// status line so the user knows why results may shift.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// waitForChange blocks on the watcher until something relevant happens.
// The returned command is re-issued after every dbChangedMsg.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) != 0 {
					return dbChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
