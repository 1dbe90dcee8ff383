package tablo

import (
	"fmt"
	"strings"

	"tablo/entity"
	"tablo/style"
)

// DetailPanel shows all fields of a single line, one per row, scrollable.
type DetailPanel struct {
	contentLines []string
	offset       int

	width  int
	height int
}

// SetSize updates the panel dimensions.
func (pnl *DetailPanel) SetSize(width, height int) {
	pnl.width = width
	pnl.height = height
}

// SetLine renders a line into field rows and resets the scroll.
func (pnl *DetailPanel) SetLine(fields []entity.Field, line entity.Line) {

	nameWidth := 0
	for _, field := range fields {
		if len(field.Name) > nameWidth {
			nameWidth = len(field.Name)
		}
	}

	lines := make([]string, 0, len(fields))
	for i, field := range fields {
		var val entity.Value
		if i < len(line) {
			val = line[i]
		}
		name := style.MutedStyle.Render(fmt.Sprintf("%-*s", nameWidth, field.Name))
		lines = append(lines, fmt.Sprintf("%s  %s", name, val.String()))
	}

	pnl.contentLines = lines
	pnl.offset = 0
}

// HandleKey scrolls the content; consumed reports the key was handled.
func (pnl *DetailPanel) HandleKey(key string) (consumed bool) {

	switch key {
	case "up", "k":
		if pnl.offset > 0 {
			pnl.offset--
		}
		return true

	case "down", "j":
		if pnl.height > 0 && len(pnl.contentLines) > pnl.height {
			maxScroll := len(pnl.contentLines) - pnl.height
			if pnl.offset < maxScroll {
				pnl.offset++
			}
		}
		return true
	}

	return false
}

// Render renders the visible portion of the field rows.
func (pnl DetailPanel) Render() string {

	if pnl.contentLines == nil {
		return "No line selected..."
	}

	visible := pnl.contentLines[pnl.offset:]
	if pnl.height > 0 && len(visible) > pnl.height {
		visible = visible[:pnl.height]
	}

	return strings.Join(visible, "\n")
}
