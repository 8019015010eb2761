package ui

import (
	"context"
	"errors"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/tui"
)

// UI runs the interactive calendar.
type UI struct {
	Service *app.Service
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no store")
	}
	return tui.Run(ctx, d.Service)
}
