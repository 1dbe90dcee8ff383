package tablo

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

const searchDebounce = 200 * time.Millisecond

// applySearchCmd schedules a filter propagation for the given generation.
// The model ignores the message if a newer keystroke has superseded it.
func applySearchCmd(gen int) tea.Cmd {

	return func() tea.Msg {
		time.Sleep(searchDebounce)
		return applySearchMsg{gen: gen}
	}
}
