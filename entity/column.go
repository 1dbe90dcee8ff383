package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Align positions cell content within a column.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// WidthMode selects how a column width is resolved against the panel width.
type WidthMode int

const (
	// WidthAuto shares leftover panel width with other auto columns.
	WidthAuto WidthMode = iota
	// WidthFixed is an absolute width in cells.
	WidthFixed
	// WidthPercent is a percentage of the panel width.
	WidthPercent
)

// WidthSpec is a column width directive, resolved to cells at render time.
// The zero value is auto.
type WidthSpec struct {
	Mode  WidthMode
	Value int
}

// Fixed returns a fixed-cell width spec.
func Fixed(cells int) WidthSpec {
	return WidthSpec{Mode: WidthFixed, Value: cells}
}

// Percent returns a percentage-of-panel width spec.
func Percent(pct int) WidthSpec {
	return WidthSpec{Mode: WidthPercent, Value: pct}
}

// UnmarshalYAML accepts "auto", a bare integer (fixed cells), or "NN%".
func (ws *WidthSpec) UnmarshalYAML(node *yaml.Node) (err error) {

	raw := strings.TrimSpace(node.Value)
	switch {
	case raw == "" || raw == "auto":
		*ws = WidthSpec{}

	case strings.HasSuffix(raw, "%"):
		var pct int
		pct, err = strconv.Atoi(strings.TrimSuffix(raw, "%"))
		if err != nil {
			return errors.Wrapf(err, "failed to parse width %q", raw)
		}
		*ws = Percent(pct)

	default:
		var cells int
		cells, err = strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "failed to parse width %q", raw)
		}
		*ws = Fixed(cells)
	}

	return nil
}

// MarshalYAML renders the spec in the form UnmarshalYAML accepts.
func (ws WidthSpec) MarshalYAML() (any, error) {
	switch ws.Mode {
	case WidthFixed:
		return ws.Value, nil
	case WidthPercent:
		return fmt.Sprintf("%d%%", ws.Value), nil
	default:
		return "auto", nil
	}
}

// Column describes one column of the table view.
// Key names the backing field and must be unique within a layout.
type Column struct {
	Key    string    `yaml:"key"`
	Title  string    `yaml:"title,omitempty"`
	Width  WidthSpec `yaml:"width,omitempty"`
	Wrap   bool      `yaml:"wrap,omitempty"`
	Align  Align     `yaml:"align,omitempty"`
	Hidden bool      `yaml:"hidden,omitempty"`
	Format string    `yaml:"format,omitempty"`

	// Renderer overrides the default field formatter when set.
	Renderer func(Line) string `yaml:"-"`
}

// Header returns the text shown in the column header.
func (col Column) Header() string {
	if col.Title != "" {
		return col.Title
	}
	return col.Key
}

// Visible reports whether the column is currently shown.
func (col Column) Visible() bool {
	return !col.Hidden
}
