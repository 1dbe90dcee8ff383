package tablo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablo/entity"
)

func TestLoadLayout(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	data := []byte(`columns:
  - key: name
    title: Name
    width: 20
  - key: created_at
    width: 30%
    format: 2006-01-02
  - key: notes
    wrap: true
  - key: count
    align: right
    hidden: true
`)
	err := os.WriteFile(path, data, 0644)
	require.NoError(t, err)

	layout, err := LoadLayout(path)
	require.NoError(t, err)
	require.Len(t, layout.Columns, 4)

	assert.Equal(t, "Name", layout.Columns[0].Header())
	assert.Equal(t, entity.Fixed(20), layout.Columns[0].Width)
	assert.Equal(t, entity.Percent(30), layout.Columns[1].Width)
	assert.Equal(t, "2006-01-02", layout.Columns[1].Format)
	assert.True(t, layout.Columns[2].Wrap)
	assert.Equal(t, entity.WidthSpec{}, layout.Columns[2].Width)
	assert.Equal(t, entity.AlignRight, layout.Columns[3].Align)
	assert.True(t, layout.Columns[3].Hidden)
}

func TestLoadLayoutMissingFile(t *testing.T) {

	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestLoadLayoutDuplicateKey(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	data := []byte(`columns:
  - key: name
  - key: name
`)
	err := os.WriteFile(path, data, 0644)
	require.NoError(t, err)

	_, err = LoadLayout(path)
	assert.ErrorContains(t, err, `duplicate column key "name"`)
}

func TestLoadLayoutEmptyKey(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	data := []byte(`columns:
  - title: Name
`)
	err := os.WriteFile(path, data, 0644)
	require.NoError(t, err)

	_, err = LoadLayout(path)
	assert.ErrorContains(t, err, "empty key")
}

func TestDefaultLayout(t *testing.T) {

	layout := DefaultLayout(testFields())
	require.Len(t, layout.Columns, 2)

	assert.Equal(t, "name", layout.Columns[0].Key)
	assert.Equal(t, entity.WidthSpec{}, layout.Columns[0].Width)
	assert.Equal(t, "count", layout.Columns[1].Key)
	assert.NoError(t, layout.validate())
}
