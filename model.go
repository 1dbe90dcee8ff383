package tablo

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"tablo/entity"
	"tablo/view"
)

const (
	footerHeight = 2 // search line + footer line
)

// Model is the bubbletea model composing the table view: it routes keys to
// the coordinator, keeps the selected line scrolled into view, and coalesces
// search keystrokes into a single filter propagation.
type Model struct {
	view   *view.View
	source view.Source
	name   string

	CurrentScreen Screen

	table  TablePanel
	search SearchPanel
	detail DetailPanel

	activeCol int
	searchGen int

	Width  int
	Height int

	errorString string

	ctx    context.Context
	logger entity.Logger
}

// NewModel creates a model over source. A nil layout derives one column per
// source field. onSelect may be nil.
func NewModel(ctx context.Context, source view.Source, layout *Layout, onSelect view.SelectFunc, lgr entity.Logger) (model Model, err error) {

	if layout == nil {
		layout = DefaultLayout(source.Fields())
	}
	err = layout.validate()
	if err != nil {
		return
	}

	vw := view.New(layout.Columns, source, onSelect)

	model = Model{
		view:   vw,
		source: source,
		name:   sourceName(source),
		ctx:    ctx,
		logger: lgr,
	}
	model.table.SetColumns(vw.VisibleColumns(), source.Fields())

	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case applySearchMsg:
		// stale generations were superseded by a newer keystroke
		if msg.gen == m.searchGen {
			m.view.ApplyFilter()
		}
		return m, nil

	case errorMsg:
		m.logger.Error(m.ctx, "error msg", msg.err)
		m.errorString = msg.err.Error()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		m.table.SetSize(msg.Width, msg.Height-footerHeight)
		m.detail.SetSize(msg.Width, msg.Height-footerHeight)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.detail.Render()
	default:
		screenContent = m.table.Render(m.source, m.view.Selected(), m.activeCol, m.view.Sorting())
	}

	searchLine := m.search.Render(m.Width)

	current := m.view.Selected() + 1
	footer := RenderFooter(current, m.source.Len(), m.name, m.view.Sorting(), m.view.Search(), m.Width)
	if m.errorString != "" {
		footer = m.errorString
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)
	searchLayer := lipgloss.NewLayer("search", searchLine).Y(m.Height - footerHeight)
	footerLayer := lipgloss.NewLayer("footer", footer).Y(m.Height - 1)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(searchLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {

	if m.errorString != "" {
		m.errorString = ""
	}

	if m.search.Focused() {
		changed, _ := m.search.HandleKey(key)
		if changed {
			m.view.SetSearch(m.search.Value())
			m.searchGen++
			return m, applySearchCmd(m.searchGen)
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.CurrentScreen == DetailScreen {
		return m.handleDetailKey(key)
	}
	return m.handleTableKey(key)
}

func (m Model) handleTableKey(key string) (tea.Model, tea.Cmd) {

	// navigation commits the new selection, then scrolls it into view
	if update, ok := m.table.NavTransform(key, m.source.Len()); ok {
		m.view.Select(update)
		m.table.ScrollTo(m.view.Selected())
		return m, nil
	}

	switch key {
	case "esc":
		return m, tea.Quit

	case "/":
		m.search.Focus()

	case "left", "h":
		if m.activeCol > 0 {
			m.activeCol--
		}

	case "right", "l":
		if m.activeCol < len(m.view.VisibleColumns())-1 {
			m.activeCol++
		}

	case "s":
		return m.sortActive()

	case "H":
		return m.hideActive()

	case "V":
		return m.showAll()

	case "+", "=":
		return m.resizeActive(2)

	case "-":
		return m.resizeActive(-2)

	case "R":
		return m.reset()

	case "enter":
		line, ok := m.source.Item(m.view.Selected())
		if ok {
			m.detail.SetLine(m.source.Fields(), line)
			m.CurrentScreen = DetailScreen
		}
	}

	return m, nil
}

func (m Model) handleDetailKey(key string) (tea.Model, tea.Cmd) {

	switch key {
	case "esc", "left", "h":
		m.CurrentScreen = TableScreen
		return m, nil
	}

	m.detail.HandleKey(key)
	return m, nil
}

func (m Model) sortActive() (tea.Model, tea.Cmd) {

	key, ok := m.activeKey()
	if !ok {
		return m, nil
	}

	err := m.view.SortColumn(key)
	if err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m Model) hideActive() (tea.Model, tea.Cmd) {

	key, ok := m.activeKey()
	if !ok {
		return m, nil
	}

	err := m.view.ToggleColumn(key)
	if err != nil {
		return m.fail(err)
	}
	return m.refreshColumns(), nil
}

func (m Model) showAll() (tea.Model, tea.Cmd) {

	for _, col := range m.view.Columns() {
		if !col.Hidden {
			continue
		}
		err := m.view.ToggleColumn(col.Key)
		if err != nil {
			return m.fail(err)
		}
	}
	return m.refreshColumns(), nil
}

func (m Model) resizeActive(delta int) (tea.Model, tea.Cmd) {

	key, ok := m.activeKey()
	if !ok {
		return m, nil
	}

	width, ok := m.table.WidthOf(key)
	if !ok {
		return m, nil
	}

	err := m.view.ResizeColumn(key, entity.Fixed(max(width+delta, minColWidth)))
	if err != nil {
		return m.fail(err)
	}
	return m.refreshColumns(), nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {

	m.view.Reset()
	m.search.Clear()
	m.searchGen++ // drop any in-flight propagation
	m.activeCol = 0

	return m.refreshColumns(), nil
}

func (m Model) refreshColumns() Model {

	m.table.SetColumns(m.view.VisibleColumns(), m.source.Fields())

	limit := len(m.view.VisibleColumns()) - 1
	if m.activeCol > limit {
		m.activeCol = max(limit, 0)
	}
	return m
}

func (m Model) activeKey() (key string, ok bool) {

	cols := m.view.VisibleColumns()
	if len(cols) == 0 || m.activeCol >= len(cols) {
		return "", false
	}
	return cols[m.activeCol].Key, true
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error(m.ctx, "view operation failed", err)
	m.errorString = err.Error()
	return m, nil
}

func sourceName(source view.Source) string {

	named, ok := source.(interface{ Name() string })
	if ok {
		return named.Name()
	}
	return ""
}
