// Package watch reloads the content catalog when files under a content
// directory change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
)

// DefaultDebounce batches bursts of editor saves into one reload.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a content.Store from a directory on change.
type Watcher struct {
	dir      string
	store    *content.Store
	logger   *zap.Logger
	debounce time.Duration
	reloaded func(*content.Catalog)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// OnReload registers fn to run after every successful reload.
func OnReload(fn func(*content.Catalog)) Option {
	return func(w *Watcher) { w.reloaded = fn }
}

// New returns a Watcher for dir feeding store.
func New(dir string, store *content.Store, logger *zap.Logger, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		store:    store,
		logger:   logger,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. A reload that fails to load or validate is
// logged and the previous catalog stays in place.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.dir); err != nil {
		return err
	}
	w.logger.Info("Watching content directory", zap.String("dir", w.dir))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Content change detected",
				zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.addTree(watcher, event.Name); err != nil {
					w.logger.Warn("Failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cat, err := content.Load(os.DirFS(w.dir))
	if err != nil {
		w.logger.Error("Content reload failed, keeping previous catalog", zap.Error(err))
		return
	}
	w.store.Replace(cat)
	w.logger.Info("Content reloaded",
		zap.Int("posts", len(cat.Posts())),
		zap.Int("projects", len(cat.Projects())))
	if w.reloaded != nil {
		w.reloaded(cat)
	}
}

func (w *Watcher) addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
