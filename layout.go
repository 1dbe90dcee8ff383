package tablo

import (
	"github.com/pkg/errors"

	"tablo/entity"
	"tablo/util"
)

// Layout holds the default column configuration for a view.
type Layout struct {
	Columns []entity.Column `yaml:"columns"`
}

// LoadLayout reads a layout from a yaml file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		return nil, err
	}

	err = layout.validate()
	if err != nil {
		return nil, err
	}

	return
}

// DefaultLayout derives an auto-width column per field.
func DefaultLayout(fields []entity.Field) *Layout {

	columns := make([]entity.Column, len(fields))
	for i, field := range fields {
		columns[i] = entity.Column{Key: field.Name}
	}

	return &Layout{Columns: columns}
}

// unexported

// validate enforces unique, non-empty column keys.
func (layout *Layout) validate() (err error) {

	seen := map[string]bool{}
	for _, col := range layout.Columns {
		if col.Key == "" {
			return errors.Errorf("column with empty key in layout")
		}
		if seen[col.Key] {
			return errors.Errorf("duplicate column key %q in layout", col.Key)
		}
		seen[col.Key] = true
	}

	return
}
