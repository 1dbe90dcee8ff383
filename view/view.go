// Package view owns the presentation state of a table: column layout, sort
// order, search text, and row selection. It translates user intent into view
// configuration on a backing Source and leaves rendering to the caller.
package view

import (
	"github.com/pkg/errors"

	"tablo/entity"
)

// Source specifies the backing collection the view coordinates.
// Its output order reflects the filter and sort configuration pushed by View.
type Source interface {
	// Fields describes the fields of each line, in line order
	Fields() []entity.Field
	// Len returns the number of lines in the current output
	Len() int
	// Item returns the line at index in the current output
	Item(index int) (line entity.Line, ok bool)
	// SetFilter configures the output filter, nil passes everything
	SetFilter(pred entity.Predicate)
	// SetSortBy configures the sort field, empty restores insertion order
	SetSortBy(key string)
	// SetReversed flips the sort direction
	SetReversed(reversed bool)
	// Reset clears filter and sort configuration
	Reset()
}

// SelectFunc is notified of selection changes before they are committed.
// line is nil when index falls outside the source output.
type SelectFunc func(line entity.Line, index int)

// View is the presentation-state coordinator for a table.
// It is single-owner state; all mutation goes through its methods.
type View struct {
	source   Source
	onSelect SelectFunc

	defaults []entity.Column
	columns  []entity.Column
	visible  []entity.Column // derived, nil when stale
	sorting  entity.Sorting
	search   string
	selected int

	applied     string // last search value pushed to the source
	everApplied bool
}

// New creates a View over source with the given default columns.
// onSelect may be nil.
func New(columns []entity.Column, source Source, onSelect SelectFunc) *View {

	defaults := make([]entity.Column, len(columns))
	copy(defaults, columns)

	current := make([]entity.Column, len(columns))
	copy(current, columns)

	return &View{
		source:   source,
		onSelect: onSelect,
		defaults: defaults,
		columns:  current,
		selected: -1,
	}
}

// Reset restores the default columns, clears sorting and search, and resets
// the source's own view configuration. Selection is left alone; it only
// moves through Select.
func (vw *View) Reset() {

	vw.columns = make([]entity.Column, len(vw.defaults))
	copy(vw.columns, vw.defaults)
	vw.visible = nil

	vw.sorting = entity.Sorting{}
	vw.search = ""

	// source reset clears its filter, so an empty search counts as applied
	vw.applied = ""
	vw.everApplied = true

	vw.source.Reset()
}

// SortColumn cycles the sort state of the named column and pushes the
// resulting configuration to the source. Per column the cycle is descending,
// then ascending, then unsorted; sorting a different column always starts
// over at descending.
func (vw *View) SortColumn(key string) (err error) {

	_, err = vw.find(key)
	if err != nil {
		return
	}

	switch {
	case vw.sorting.Key != key:
		vw.sorting = entity.Sorting{Key: key, Dir: entity.Descending}
		vw.source.SetSortBy(key)
		vw.source.SetReversed(false)

	case vw.sorting.Dir == entity.Descending:
		vw.sorting.Dir = entity.Ascending
		vw.source.SetReversed(true)

	default:
		vw.sorting = entity.Sorting{}
		vw.source.SetSortBy("")
		vw.source.SetReversed(false)
	}

	return
}

// ResizeColumn overwrites the width of the named column.
func (vw *View) ResizeColumn(key string, width entity.WidthSpec) (err error) {

	col, err := vw.find(key)
	if err != nil {
		return
	}

	col.Width = width
	vw.visible = nil
	return
}

// ToggleColumn flips the visibility of the named column.
// Column order is unchanged.
func (vw *View) ToggleColumn(key string) (err error) {

	col, err := vw.find(key)
	if err != nil {
		return
	}

	col.Hidden = !col.Hidden
	vw.visible = nil
	return
}

// SetSearch updates the search text. The derived filter is not pushed to the
// source until ApplyFilter runs, so rapid updates coalesce.
func (vw *View) SetSearch(text string) {
	vw.search = text
}

// ApplyFilter pushes the filter derived from the search text to the source,
// at most once per distinct value. An empty search clears the filter.
func (vw *View) ApplyFilter() {

	if vw.everApplied && vw.search == vw.applied {
		return
	}

	if vw.search == "" {
		vw.source.SetFilter(nil)
	} else {
		vw.source.SetFilter(MatchAny(vw.search))
	}

	vw.applied = vw.search
	vw.everApplied = true
}

// Select computes a new selection from the current one via update and
// commits it, notifying the select callback first. The new index is
// committed even when it falls outside the source output; bounds are the
// business of the update transform, not of Select.
func (vw *View) Select(update func(current int) int) {

	next := update(vw.selected)

	line, ok := vw.source.Item(next)
	if vw.onSelect != nil {
		if !ok {
			line = nil
		}
		vw.onSelect(line, next)
	}

	vw.selected = next
}

// Selected returns the current selection index into the source output,
// or -1 when nothing is selected.
func (vw *View) Selected() int {
	return vw.selected
}

// Search returns the current search text.
func (vw *View) Search() string {
	return vw.search
}

// Sorting returns the current sort state.
func (vw *View) Sorting() entity.Sorting {
	return vw.sorting
}

// Columns returns all columns in layout order, hidden ones included.
func (vw *View) Columns() []entity.Column {
	return vw.columns
}

// VisibleColumns returns the visible columns in layout order.
// The derivation is cached and recomputed only after a column mutation.
func (vw *View) VisibleColumns() []entity.Column {

	if vw.visible == nil {
		vis := []entity.Column{}
		for _, col := range vw.columns {
			if col.Visible() {
				vis = append(vis, col)
			}
		}
		vw.visible = vis
	}

	return vw.visible
}

// Source returns the backing collection.
func (vw *View) Source() Source {
	return vw.source
}

// unexported

func (vw *View) find(key string) (col *entity.Column, err error) {

	for i := range vw.columns {
		if vw.columns[i].Key == key {
			return &vw.columns[i], nil
		}
	}

	err = errors.Errorf("no column with key %q", key)
	return
}
