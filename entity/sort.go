package entity

// Direction orders a column sort.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// Sorting is the single-column sort state.
// The zero value (empty Key) means unsorted.
type Sorting struct {
	Key string
	Dir Direction
}

// None reports whether no sort is active.
func (srt Sorting) None() bool {
	return srt.Key == ""
}
