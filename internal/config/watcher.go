package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk. Editors often
// replace the file (rename + create) instead of writing in place, so the
// parent directory is watched and events are debounced before reloading.
// Snapshots that fail validation are rejected and logged; the previous
// configuration stays in effect.
type Watcher struct {
	path     string
	logger   *slog.Logger
	updates  chan *Config
	debounce time.Duration
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:     path,
		logger:   logger,
		updates:  make(chan *Config, 1),
		debounce: 200 * time.Millisecond,
	}
}

// Updates delivers validated config snapshots after each successful
// reload. Only the newest pending snapshot is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Run watches the config file until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	w.logger.Info("config watcher started", "path", w.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watch error", "err", err)

		case <-timerC:
			cfg, err := LoadAndValidate(w.path)
			if err != nil {
				w.logger.Warn("config reload rejected", "err", err)
				continue
			}
			w.logger.Info("config reloaded", "path", w.path)

			// Single producer: drop the stale pending snapshot, keep newest.
			select {
			case <-w.updates:
			default:
			}
			w.updates <- cfg
		}
	}
}
