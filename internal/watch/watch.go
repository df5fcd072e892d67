// Package watch re-solves days when their input files change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// DayResolver maps a changed file to the day it belongs to.
type DayResolver func(path string) (int, bool)

// Handler receives the days whose inputs changed, in ascending order.
type Handler func(ctx context.Context, days []int)

// Watcher watches an inputs directory tree.
type Watcher struct {
	root     string
	resolve  DayResolver
	debounce time.Duration
	logger   zerolog.Logger
	ready    func()
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before the handler runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithReady registers a function called once the watch list is installed.
func WithReady(fn func()) Option {
	return func(w *Watcher) { w.ready = fn }
}

// New returns a Watcher for root.
func New(root string, resolve DayResolver, opts ...Option) *Watcher {
	w := &Watcher{
		root:     root,
		resolve:  resolve,
		debounce: DefaultDebounce,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run watches until ctx is cancelled. Created or written files that resolve
// to a day are collected; once no event has arrived for the debounce period
// the handler runs with the collected days.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := addDirsRecursive(fw, w.root); err != nil {
		return err
	}
	w.logger.Info().Str("root", w.root).Msg("watcher: started")
	if w.ready != nil {
		w.ready()
	}

	pending := make(map[int]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		} else {
			timer.Reset(w.debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info().Msg("watcher: stopped")
			return nil

		case <-fire:
			days := make([]int, 0, len(pending))
			for d := range pending {
				days = append(days, d)
			}
			clear(pending)
			slices.Sort(days)
			if len(days) > 0 {
				handle(ctx, days)
			}

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(fw, ev.Name); addErr != nil {
						w.logger.Warn().Err(addErr).Str("path", ev.Name).Msg("watcher: add new dir failed")
					}
					w.collectDir(ev.Name, pending)
					schedule()
					continue
				}
			}

			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			day, ok := w.resolve(ev.Name)
			if !ok {
				continue
			}
			w.logger.Debug().Str("path", ev.Name).Int("day", day).Msg("watcher: input changed")
			pending[day] = struct{}{}
			schedule()

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(watchErr).Msg("watcher: error")
		}
	}
}

// collectDir queues days for input files already present in a new directory.
func (w *Watcher) collectDir(dir string, pending map[int]struct{}) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if day, ok := w.resolve(path); ok {
			pending[day] = struct{}{}
		}
		return nil
	})
}

func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}
