package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablo/entity"
	"tablo/store/mem"
	"tablo/view"
)

func fields() []entity.Field {
	return []entity.Field{
		{Name: "name", Type: "VARCHAR"},
		{Name: "count", Type: "BIGINT"},
	}
}

func line(name string, count int64) entity.Line {
	return entity.Line{{Raw: name}, {Raw: count}}
}

func seeded(t *testing.T) *mem.Mem {
	t.Helper()

	src := mem.New("test", fields())
	src.Append(
		line("carol", 3),
		line("alice", 1),
		line("bob", 2),
		line("alice", 9),
	)
	return src
}

func TestAppendAndItem(t *testing.T) {

	src := mem.New("test", fields())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, "test", src.Name())

	src.Append(line("alice", 1), line("bob", 2))
	require.Equal(t, 2, src.Len())

	// insertion order
	got, ok := src.Item(1)
	require.True(t, ok)
	assert.Equal(t, "bob", got[0].String())

	_, ok = src.Item(2)
	assert.False(t, ok)
	_, ok = src.Item(-1)
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {

	src := seeded(t)

	src.SetFilter(view.MatchAny("ali"))
	assert.Equal(t, 2, src.Len())

	src.SetFilter(nil)
	assert.Equal(t, 4, src.Len(), "nil filter passes everything")
}

func TestSort(t *testing.T) {

	src := seeded(t)
	src.SetSortBy("count")

	// descending until reversed
	first, _ := src.Item(0)
	last, _ := src.Item(3)
	assert.Equal(t, "alice", first[0].String())
	assert.Equal(t, int64(9), first[1].Raw)
	assert.Equal(t, int64(1), last[1].Raw)

	src.SetReversed(true)
	first, _ = src.Item(0)
	assert.Equal(t, int64(1), first[1].Raw)
}

func TestSortStable(t *testing.T) {

	src := mem.New("test", fields())
	src.Append(
		line("first", 5),
		line("second", 5),
		line("third", 5),
	)
	src.SetSortBy("count")

	// equal keys keep insertion order
	for i, want := range []string{"first", "second", "third"} {
		got, ok := src.Item(i)
		require.True(t, ok)
		assert.Equal(t, want, got[0].String())
	}
}

func TestSortUnknownField(t *testing.T) {

	src := seeded(t)
	src.SetSortBy("bogus")

	got, ok := src.Item(0)
	require.True(t, ok)
	assert.Equal(t, "carol", got[0].String(), "unknown sort field keeps insertion order")
}

func TestFilterThenSort(t *testing.T) {

	src := seeded(t)
	src.SetFilter(view.MatchAny("alice"))
	src.SetSortBy("count")
	src.SetReversed(true)

	require.Equal(t, 2, src.Len())
	first, _ := src.Item(0)
	second, _ := src.Item(1)
	assert.Equal(t, int64(1), first[1].Raw)
	assert.Equal(t, int64(9), second[1].Raw)
}

func TestReset(t *testing.T) {

	src := seeded(t)
	src.SetFilter(view.MatchAny("alice"))
	src.SetSortBy("count")
	src.SetReversed(true)

	src.Reset()

	assert.Equal(t, 4, src.Len())
	got, ok := src.Item(0)
	require.True(t, ok)
	assert.Equal(t, "carol", got[0].String(), "reset restores insertion order")
}

func TestAppendInvalidates(t *testing.T) {

	src := seeded(t)
	src.SetFilter(view.MatchAny("dave"))
	require.Equal(t, 0, src.Len())

	src.Append(line("dave", 7))
	assert.Equal(t, 1, src.Len(), "appended lines pass through the active filter")
}
