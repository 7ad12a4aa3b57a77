// Package watch provides a watch-and-regenerate wrapper around the settings
// compiler. Each regeneration is an independent, full compile of the schema;
// regenerations of the same output target are serialized so writes never
// interleave.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// defaultDebounce coalesces the event bursts editors produce on save.
const defaultDebounce = 500 * time.Millisecond

// RegenerateFunc runs one full compile of the schema to the output target.
type RegenerateFunc func(ctx context.Context) error

// Config configures a Watcher.
type Config struct {
	// Path is the schema file to watch.
	Path string

	// Debounce is the quiet period after a change before regenerating.
	// Zero means the default of 500ms.
	Debounce time.Duration

	// Logger receives watch lifecycle and regeneration events.
	Logger zerolog.Logger
}

// Watcher watches a schema file and triggers debounced regenerations.
type Watcher struct {
	cfg     Config
	watcher *fsnotify.Watcher

	// mu serializes regenerations; concurrent triggers wait rather than
	// overlap.
	mu sync.Mutex
}

// New creates a watcher for the configured schema file. The file's directory
// is watched rather than the file itself, so editors that replace the file on
// save keep triggering events.
func New(cfg Config) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	cfg.Path = filepath.Clean(cfg.Path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(cfg.Path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(cfg.Path), err)
	}

	return &Watcher{cfg: cfg, watcher: fsw}, nil
}

// Run performs an initial regeneration, then blocks processing file system
// events until the context is cancelled. A failed regeneration is logged and
// leaves the previous output intact; the watch continues.
func (w *Watcher) Run(ctx context.Context, regen RegenerateFunc) error {
	defer func() {
		_ = w.watcher.Close()
	}()

	w.regenerate(ctx, regen)

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.cfg.Logger.Debug().
				Str("file", event.Name).
				Str("op", event.Op.String()).
				Msg("Schema file changed")

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.cfg.Debounce, func() {
				w.regenerate(ctx, regen)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.cfg.Logger.Warn().Err(err).Msg("Watch error")
		}
	}
}

// relevant reports whether an event concerns the watched schema file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.cfg.Path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// regenerate runs one compile under the serialization lock.
func (w *Watcher) regenerate(ctx context.Context, regen RegenerateFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	if err := regen(ctx); err != nil {
		w.cfg.Logger.Error().Err(err).Msg("Regeneration failed; previous output kept")
		return
	}
	w.cfg.Logger.Info().
		Dur("duration", time.Since(start)).
		Msg("Settings module regenerated")
}
