package tablo

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"tablo/entity"
	"tablo/style"
)

// RenderFooter renders position, view state, and source name on one line.
func RenderFooter(current, total int, name string, sorting entity.Sorting, search string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)

	var state []string
	if !sorting.None() {
		arrow := "▼"
		if sorting.Dir == entity.Ascending {
			arrow = "▲"
		}
		state = append(state, fmt.Sprintf("sort:%s%s", sorting.Key, arrow))
	}
	if search != "" {
		state = append(state, fmt.Sprintf("filter:%q", search))
	}
	if len(state) > 0 {
		left += "  " + strings.Join(state, " ")
	}

	right := name

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.MutedStyle.Render(left + strings.Repeat(" ", padding) + right)
}
