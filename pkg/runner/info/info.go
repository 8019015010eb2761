package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/store"
)

// Info describes where notes are stored.
type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("CALNOTE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CALNOTE_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "CALNOTE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("path"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("key"), n.Config.Key())
	if log := store.LogFile(n.Config); log != "" {
		tbl.AddRow(bold.Sprint("log"), log)
	}

	if n.Service == nil {
		return fmt.Errorf("failed to open the note store")
	}
	tbl.AddRow(bold.Sprint("events"), fmt.Sprint(len(n.Service.Snapshot().Notes)))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
