// Package mem provides an in-memory backing collection for a table view:
// an append-heavy ordered set of lines with a derived output sequence
// reflecting the configured filter and sort.
package mem

import (
	"sort"

	"tablo/entity"
)

// Mem holds lines in insertion order and derives output lazily.
// It is meant for single-threaded use from the composing TUI.
type Mem struct {
	name   string
	fields []entity.Field
	rows   []entity.Line

	pred     entity.Predicate
	sortBy   string
	reversed bool

	output []entity.Line
	stale  bool
}

// New creates an empty collection with the given field layout.
func New(name string, fields []entity.Field) *Mem {

	return &Mem{
		name:   name,
		fields: fields,
		stale:  true,
	}
}

// Name returns the name of the collection.
func (m *Mem) Name() string {
	return m.name
}

// Append adds lines in insertion order and invalidates the output.
func (m *Mem) Append(lines ...entity.Line) {
	m.rows = append(m.rows, lines...)
	m.stale = true
}

// Fields describes the fields of each line.
func (m *Mem) Fields() []entity.Field {
	return m.fields
}

// Len returns the number of lines in the current output.
func (m *Mem) Len() int {
	m.recompute()
	return len(m.output)
}

// Item returns the line at index in the current output.
func (m *Mem) Item(index int) (line entity.Line, ok bool) {

	m.recompute()

	if index < 0 || index >= len(m.output) {
		return nil, false
	}
	return m.output[index], true
}

// SetFilter configures the output filter; nil passes everything.
func (m *Mem) SetFilter(pred entity.Predicate) {
	m.pred = pred
	m.stale = true
}

// SetSortBy configures the sort field; empty restores insertion order.
// Unsorted direction is descending, see SetReversed.
func (m *Mem) SetSortBy(key string) {
	m.sortBy = key
	m.stale = true
}

// SetReversed flips the sort direction to ascending.
func (m *Mem) SetReversed(reversed bool) {
	m.reversed = reversed
	m.stale = true
}

// Reset clears filter and sort configuration.
func (m *Mem) Reset() {
	m.pred = nil
	m.sortBy = ""
	m.reversed = false
	m.stale = true
}

// unexported

// recompute filters then stable-sorts the rows into output.
func (m *Mem) recompute() {

	if !m.stale {
		return
	}

	out := make([]entity.Line, 0, len(m.rows))
	for _, line := range m.rows {
		if m.pred == nil || m.pred(line) {
			out = append(out, line)
		}
	}

	idx := m.fieldIndex(m.sortBy)
	if idx != -1 {
		sort.SliceStable(out, func(i, j int) bool {
			cmp := compare(valueAt(out[i], idx), valueAt(out[j], idx))
			if m.reversed {
				return cmp < 0
			}
			return cmp > 0
		})
	}

	m.output = out
	m.stale = false
}

func (m *Mem) fieldIndex(name string) int {

	if name == "" {
		return -1
	}
	for i, field := range m.fields {
		if field.Name == name {
			return i
		}
	}
	return -1
}

func valueAt(line entity.Line, idx int) entity.Value {
	if idx >= len(line) {
		return entity.Value{}
	}
	return line[idx]
}

// compare orders two values, numerics and times by magnitude, the rest by
// string representation.
func compare(a, b entity.Value) int {

	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	at, aerr := a.Time()
	bt, berr := b.Time()
	if aerr == nil && berr == nil {
		return at.Compare(bt)
	}

	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asFloat(v entity.Value) (float64, bool) {

	switch raw := v.Raw.(type) {
	case int64:
		return float64(raw), true
	case int:
		return float64(raw), true
	case int32:
		return float64(raw), true
	case float64:
		return raw, true
	case float32:
		return float64(raw), true
	default:
		return 0, false
	}
}
