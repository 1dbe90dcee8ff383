package tablo

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2/table"

	"tablo/entity"
	"tablo/style"
	"tablo/view"
)

const (
	headerHeight = 2
	minColWidth  = 4
)

// TablePanel is the windowed renderer for the table screen. It materializes
// only the lines intersecting the current window and keeps the selected line
// in view with minimal scrolling.
type TablePanel struct {
	offset int

	width  int
	height int

	colFmts []colFmt
}

// colFmt tracks order, width, and format of a visible column.
type colFmt struct {
	lineIdx   int
	key       string
	header    string
	spec      entity.WidthSpec
	align     entity.Align
	wrap      bool
	renderer  func(entity.Line) string
	formatter func(entity.Value) string
}

// SetSize updates the panel dimensions.
func (pnl *TablePanel) SetSize(width, height int) {
	pnl.width = width
	pnl.height = height
}

// PageSize returns the number of lines that fit in the window.
func (pnl TablePanel) PageSize() int {

	size := pnl.height - headerHeight
	if size < 0 {
		size = 0
	}
	return size
}

// Offset returns the output index of the first windowed line.
func (pnl TablePanel) Offset() int {
	return pnl.offset
}

// NavTransform maps a navigation key to a selection transform clamped to
// [0, total-1]. Page distance derives from the window size at call time.
// ok is false for keys the panel does not handle.
func (pnl TablePanel) NavTransform(key string, total int) (update func(int) int, ok bool) {

	size := pnl.PageSize()

	switch key {
	case "up", "k":
		update = func(idx int) int { return max(idx-1, 0) }
	case "down", "j":
		update = func(idx int) int { return min(idx+1, total-1) }
	case "home", "g":
		update = func(int) int { return 0 }
	case "end", "G":
		update = func(int) int { return total - 1 }
	case "pgdown", "ctrl+d":
		update = func(idx int) int { return min(total-1, idx+size-1) }
	case "pgup", "ctrl+u":
		update = func(idx int) int { return max(0, idx-size-1) }
	default:
		return nil, false
	}

	return update, true
}

// ScrollTo scrolls the minimum amount needed to bring index into the window,
// a no-op when it is already visible or negative.
func (pnl *TablePanel) ScrollTo(index int) {

	size := pnl.PageSize()
	if index < 0 || size <= 0 {
		return
	}

	if index < pnl.offset {
		pnl.offset = index
	} else if index >= pnl.offset+size {
		pnl.offset = index - size + 1
	}
}

// WidthOf returns the currently resolved width of the named column.
func (pnl TablePanel) WidthOf(key string) (width int, ok bool) {

	widths := resolveWidths(pnl.colFmts, pnl.width)
	for i, cf := range pnl.colFmts {
		if cf.key == key {
			return widths[i], true
		}
	}
	return 0, false
}

// SetColumns resolves visible columns against source fields.
func (pnl *TablePanel) SetColumns(columns []entity.Column, fields []entity.Field) {

	idxByName := map[string]int{}
	for i, field := range fields {
		idxByName[field.Name] = i
	}

	colFmts := []colFmt{}
	for _, col := range columns {
		if !col.Visible() {
			continue
		}

		idx, found := idxByName[col.Key]
		var fieldType string
		if found {
			fieldType = fields[idx].Type
		}

		colFmts = append(colFmts, colFmt{
			lineIdx:   idx,
			key:       col.Key,
			header:    col.Header(),
			spec:      col.Width,
			align:     col.Align,
			wrap:      col.Wrap,
			renderer:  col.Renderer,
			formatter: makeFormatter(fieldType, col.Format),
		})
	}

	pnl.colFmts = colFmts
}

// Render renders the current window of the source output.
func (pnl *TablePanel) Render(src view.Source, selected, activeCol int, sorting entity.Sorting) string {

	if pnl.width == 0 {
		return "Loading..."
	}

	pnl.clampOffset(src.Len())
	widths := resolveWidths(pnl.colFmts, pnl.width)

	tbl := table.New()
	style.StyleTable(tbl)
	tbl.Headers(pnl.headers(widths, activeCol, sorting)...)
	tbl.StyleFunc(style.RowStyler(selected - pnl.offset))

	last := min(pnl.offset+pnl.PageSize(), src.Len())
	for i := pnl.offset; i < last; i++ {
		line, ok := src.Item(i)
		if !ok {
			break
		}
		tbl.Row(pnl.row(line, widths)...)
	}

	return tbl.Render()
}

// unexported

// clampOffset pulls the window back when the output shrank beneath it.
func (pnl *TablePanel) clampOffset(total int) {

	limit := max(0, total-pnl.PageSize())
	if pnl.offset > limit {
		pnl.offset = limit
	}
}

func (pnl TablePanel) headers(widths []int, activeCol int, sorting entity.Sorting) []string {

	headers := make([]string, len(pnl.colFmts))
	for i, cf := range pnl.colFmts {

		text := cf.header
		if cf.key == sorting.Key {
			if sorting.Dir == entity.Descending {
				text += " ▼"
			} else {
				text += " ▲"
			}
		}

		// pad before styling, ansi would throw off the width
		padded := fmt.Sprintf("%-*s", widths[i]+1, text)
		switch {
		case i == activeCol:
			padded = style.HlHeaderStyle.Render(padded)
		case cf.key == sorting.Key:
			padded = style.SortedStyle.Render(padded)
		}

		headers[i] = padded
	}

	return headers
}

func (pnl TablePanel) row(line entity.Line, widths []int) []string {

	row := make([]string, len(pnl.colFmts))
	for i, cf := range pnl.colFmts {

		var formatted string
		switch {
		case cf.renderer != nil:
			formatted = cf.renderer(line)
		case cf.lineIdx < len(line):
			formatted = cf.formatter(line[cf.lineIdx])
		}

		if !cf.wrap {
			formatted = truncate(formatted, widths[i])
		}
		row[i] = alignCell(formatted, widths[i], cf.align)
	}

	return row
}

// resolveWidths turns width specs into cells against the panel width.
// Fixed widths are taken as given, percentages are of the panel width, and
// autos split whatever remains.
func resolveWidths(colFmts []colFmt, panelWidth int) []int {

	widths := make([]int, len(colFmts))
	remaining := panelWidth - len(colFmts) // one cell of padding per column

	autos := []int{}
	for i, cf := range colFmts {
		switch cf.spec.Mode {
		case entity.WidthFixed:
			widths[i] = max(cf.spec.Value, minColWidth)
		case entity.WidthPercent:
			widths[i] = max(panelWidth*cf.spec.Value/100, minColWidth)
		default:
			autos = append(autos, i)
			continue
		}
		remaining -= widths[i]
	}

	if len(autos) > 0 {
		share := max(remaining/len(autos), minColWidth)
		for _, i := range autos {
			widths[i] = share
		}
	}

	return widths
}

func alignCell(in string, width int, align entity.Align) string {

	switch align {
	case entity.AlignRight:
		return fmt.Sprintf("%*s", width, in)
	case entity.AlignCenter:
		pad := width - len(in)
		if pad <= 0 {
			return in
		}
		left := pad / 2
		return strings.Repeat(" ", left) + in + strings.Repeat(" ", pad-left)
	default:
		return fmt.Sprintf("%-*s", width, in)
	}
}

func makeFormatter(fieldType, format string) func(entity.Value) string {

	if format != "" && fieldType == "TIMESTAMP" {
		return func(val entity.Value) string {
			t, err := val.Time()
			if err == nil {
				return t.Format(format)
			}
			return val.String()
		}
	}

	return func(val entity.Value) string {
		return val.String()
	}
}

func truncate(in string, width int) string {

	if len(in) <= width {
		return in
	}

	truncated := in[:width-1]
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
