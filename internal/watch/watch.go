package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"codeguard/internal/source"
)

const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the path of a changed source file.
type Handler func(ctx context.Context, path string)

// Watcher rescans source files under a directory when they change.
type Watcher struct {
	Debounce time.Duration
	Logger   *zap.Logger
	// Ready, if set, is closed once the initial watches are registered.
	Ready chan struct{}
}

func New(logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{Debounce: DefaultDebounce, Logger: logger}
}

// Run watches root and its subdirectories until ctx is done. Create and
// write events on files with a known extension are debounced per path and
// passed to handle on the Run goroutine.
func (w *Watcher) Run(ctx context.Context, root string, handle Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}
	defer fw.Close()

	if err := addWatchRecursive(fw, root); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	if w.Ready != nil {
		close(w.Ready)
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	timers := make(map[string]*time.Timer)
	fire := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-fire:
			delete(timers, path)
			handle(ctx, path)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addWatchRecursive(fw, ev.Name); err != nil {
						logger.Warn("watch add failed", zap.String("dir", ev.Name), zap.Error(err))
					}
					continue
				}
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !source.Known(ev.Name) || hidden(ev.Name) {
				continue
			}
			if t, ok := timers[ev.Name]; ok {
				t.Stop()
			}
			path := ev.Name
			timers[path] = time.AfterFunc(debounce, func() {
				select {
				case fire <- path:
				case <-ctx.Done():
				}
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && hidden(path) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// hidden reports whether the base name starts with a dot, e.g. .git.
func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
