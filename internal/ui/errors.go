package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeManager holds the transient footer line: either an error or a
// short-lived drop notice. Notices auto-clear after the configured delay;
// errors stay until replaced.
type noticeManager struct {
	err        error
	notice     string
	clearDelay time.Duration
}

func newNoticeManager(clearDelay time.Duration) *noticeManager {
	if clearDelay <= 0 {
		clearDelay = 5 * time.Second
	}
	return &noticeManager{clearDelay: clearDelay}
}

// SetError records an error for display. Errors replace any notice.
func (n *noticeManager) SetError(err error) {
	n.err = err
	n.notice = ""
}

// SetNotice records a transient message and returns the command that
// clears it again.
func (n *noticeManager) SetNotice(notice string) tea.Cmd {
	n.notice = notice
	n.err = nil
	return tea.Tick(n.clearDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// Clear drops the notice (errors are kept until something replaces them).
func (n *noticeManager) Clear() {
	n.notice = ""
}

// Line returns the footer text (or "") and whether it is an error.
func (n *noticeManager) Line() (text string, isError bool) {
	if n.err != nil {
		return "Error: " + n.err.Error(), true
	}
	return n.notice, false
}
