// Package tablo is an interactive table viewer for large, growing datasets.
// A presentation-state coordinator (package view) owns column layout, sort,
// search, and selection; this package composes it with a windowed table
// panel so only the lines on screen are ever materialized.
package tablo

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"tablo/entity"
	"tablo/view"
)

// Run assembles a program over source and runs it until quit.
func Run(ctx context.Context, source view.Source, layout *Layout, lgr entity.Logger) (err error) {

	model, err := NewModel(ctx, source, layout, nil, lgr)
	if err != nil {
		return
	}

	program := tea.NewProgram(model)
	_, err = program.Run()
	return
}
