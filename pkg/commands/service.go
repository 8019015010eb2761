package commands

import (
	"io"

	"tableflip.dev/calnote/pkg/app"
	"tableflip.dev/calnote/pkg/logging"
	"tableflip.dev/calnote/pkg/store"
)

// session is the store, service and logger behind one command run.
type session struct {
	Config  store.Config
	Service *app.Service
	closer  io.Closer
}

func (s *session) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}

// openSession resolves config, opens the log file and loads the note store.
// With --ephemeral nothing is read from disk.
func openSession() (*session, error) {
	if so.Ephemeral {
		svc, err := app.New(store.NewMemory(nil), app.Options{})
		if err != nil {
			return nil, err
		}
		return &session{Config: &store.FileConfig{Path: "(memory)"}, Service: svc}, nil
	}

	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.Open(store.LogFile(cfg), so.Debug)
	if err != nil {
		return nil, err
	}
	s := &session{Config: cfg, closer: closer}

	p, err := store.Load(cfg, store.WithLogger(log))
	if err != nil {
		s.Close()
		return nil, err
	}
	log.Debug().Str("path", cfg.BasePath()).Str("key", cfg.Key()).Msg("store opened")

	svc, err := app.New(p, app.Options{Logger: &log})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Service = svc
	return s, nil
}
