package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"
)

// Option customises a store returned by Load.
type Option func(*persistence)

// WithLogger routes store diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(p *persistence) {
		p.log = log
	}
}

// Load creates a NoteStore backed by diskv using the provided config. A nil
// config is resolved with LoadConfig.
func Load(cfg Config, opts ...Option) (NoteStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			TempDir:  filepath.Join(basePath, ".tmp"),
			// Other processes may rewrite the key; reads must hit disk.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      cfg.Key(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if _, err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
	log      zerolog.Logger

	mu    sync.Mutex
	notes Notes
}

// Load re-reads the key. Absent or malformed payloads read as no notes.
func (p *persistence) Load() (Notes, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notes = p.read()
	return p.notes.Clone(), nil
}

func (p *persistence) read() Notes {
	if !p.d.Has(p.key) {
		return Notes{}
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		p.log.Warn().Err(err).Str("key", p.key).Msg("read notes, treating as empty")
		return Notes{}
	}
	if len(val) == 0 {
		return Notes{}
	}
	var notes Notes
	if err := json.Unmarshal(val, &notes); err != nil || notes == nil {
		p.log.Warn().Err(err).Str("key", p.key).Msg("malformed notes, treating as empty")
		return Notes{}
	}
	return sanitize(notes)
}

func (p *persistence) Save(date, text string) error {
	if Blank(text) {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, had := p.notes[date]
	p.notes[date] = text
	if err := p.flush(); err != nil {
		if had {
			p.notes[date] = prev
		} else {
			delete(p.notes, date)
		}
		return err
	}
	p.log.Debug().Str("date", date).Msg("note saved")
	return nil
}

func (p *persistence) Delete(date string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, had := p.notes[date]
	delete(p.notes, date)
	if err := p.flush(); err != nil {
		if had {
			p.notes[date] = prev
		}
		return err
	}
	p.log.Debug().Str("date", date).Bool("existed", had).Msg("note deleted")
	return nil
}

// flush overwrites the key with the whole mapping. Caller holds p.mu.
func (p *persistence) flush() error {
	data, err := json.Marshal(p.notes)
	if err != nil {
		return fmt.Errorf("store: encode notes: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		p.log.Error().Err(err).Str("key", p.key).Msg("write notes")
		return fmt.Errorf("store: write notes: %w", err)
	}
	return nil
}
