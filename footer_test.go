package tablo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tablo/entity"
)

func TestRenderFooter(t *testing.T) {

	footer := RenderFooter(3, 42, "events", entity.Sorting{}, "", 40)
	assert.Contains(t, footer, "3/42")
	assert.Contains(t, footer, "events")
	assert.NotContains(t, footer, "sort:")
	assert.NotContains(t, footer, "filter:")
}

func TestRenderFooterState(t *testing.T) {

	sorting := entity.Sorting{Key: "count", Dir: entity.Descending}
	footer := RenderFooter(1, 9, "events", sorting, "abc", 60)
	assert.Contains(t, footer, "sort:count▼")
	assert.Contains(t, footer, `filter:"abc"`)

	sorting.Dir = entity.Ascending
	footer = RenderFooter(1, 9, "events", sorting, "", 60)
	assert.Contains(t, footer, "sort:count▲")
}

func TestRenderFooterNarrow(t *testing.T) {

	// name overflows, padding clamps to zero rather than panicking
	footer := RenderFooter(1, 9, "a-rather-long-source-name", entity.Sorting{}, "", 10)
	assert.Contains(t, footer, "a-rather-long-source-name")
}
