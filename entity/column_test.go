package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWidthSpecUnmarshal(t *testing.T) {

	cases := []struct {
		name string
		yml  string
		want WidthSpec
	}{
		{"auto", `width: auto`, WidthSpec{}},
		{"empty", `key: id`, WidthSpec{}},
		{"fixed", `width: 12`, Fixed(12)},
		{"percent", `width: 30%`, Percent(30)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var col Column
			err := yaml.Unmarshal([]byte(c.yml), &col)
			require.NoError(t, err)
			assert.Equal(t, c.want, col.Width)
		})
	}
}

func TestWidthSpecUnmarshalBad(t *testing.T) {

	var col Column
	err := yaml.Unmarshal([]byte(`width: wide`), &col)
	assert.ErrorContains(t, err, "failed to parse width")

	err = yaml.Unmarshal([]byte(`width: x%`), &col)
	assert.ErrorContains(t, err, "failed to parse width")
}

func TestWidthSpecRoundTrip(t *testing.T) {

	for _, spec := range []WidthSpec{{}, Fixed(8), Percent(40)} {
		data, err := yaml.Marshal(spec)
		require.NoError(t, err)

		var got WidthSpec
		err = yaml.Unmarshal(data, &got)
		require.NoError(t, err)
		assert.Equal(t, spec, got)
	}
}

func TestColumnHeader(t *testing.T) {

	col := Column{Key: "created_at"}
	assert.Equal(t, "created_at", col.Header())

	col.Title = "Created"
	assert.Equal(t, "Created", col.Header())
}

func TestColumnVisible(t *testing.T) {

	col := Column{Key: "id"}
	assert.True(t, col.Visible())

	col.Hidden = true
	assert.False(t, col.Visible())
}
