package tablo

import (
	"fmt"

	"tablo/style"
)

// SearchPanel is a single-line text input for the table search.
// While focused it consumes all key input.
type SearchPanel struct {
	value   string
	cursor  int
	focused bool
}

// Focused reports whether the panel is capturing input.
func (pnl SearchPanel) Focused() bool {
	return pnl.focused
}

// Focus starts capturing input.
func (pnl *SearchPanel) Focus() {
	pnl.focused = true
	pnl.cursor = len(pnl.value)
}

// Blur stops capturing input, keeping the value.
func (pnl *SearchPanel) Blur() {
	pnl.focused = false
}

// Value returns the current search text.
func (pnl SearchPanel) Value() string {
	return pnl.value
}

// Clear empties the search text.
func (pnl *SearchPanel) Clear() {
	pnl.value = ""
	pnl.cursor = 0
}

// HandleKey edits the value for a single key press.
// changed reports a value edit, done reports the input is finished.
func (pnl *SearchPanel) HandleKey(key string) (changed, done bool) {

	before := pnl.value

	switch key {
	case "enter", "esc":
		pnl.focused = false
		done = true

	case "ctrl+u":
		pnl.value = ""
		pnl.cursor = 0

	case "backspace":
		if pnl.cursor > 0 {
			pnl.value = pnl.value[:pnl.cursor-1] + pnl.value[pnl.cursor:]
			pnl.cursor--
		}

	case "delete":
		if pnl.cursor < len(pnl.value) {
			pnl.value = pnl.value[:pnl.cursor] + pnl.value[pnl.cursor+1:]
		}

	case "left":
		if pnl.cursor > 0 {
			pnl.cursor--
		}

	case "right":
		if pnl.cursor < len(pnl.value) {
			pnl.cursor++
		}

	case "home", "ctrl+a":
		pnl.cursor = 0

	case "end", "ctrl+e":
		pnl.cursor = len(pnl.value)

	case "space":
		pnl.insert(" ")

	default:
		if len(key) == 1 {
			pnl.insert(key)
		}
	}

	changed = pnl.value != before
	return
}

// Render renders the search line with a prompt and cursor marker.
func (pnl SearchPanel) Render(width int) string {

	if !pnl.focused && pnl.value == "" {
		return style.MutedStyle.Render("press / to search")
	}

	line := fmt.Sprintf("/ %s", pnl.value)
	if pnl.focused {
		line += "█"
	}
	return style.PromptStyle.Render(line)
}

// unexported

func (pnl *SearchPanel) insert(text string) {
	pnl.value = pnl.value[:pnl.cursor] + text + pnl.value[pnl.cursor:]
	pnl.cursor += len(text)
}
