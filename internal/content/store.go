package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/changomango/portfolio/internal/textutil"
	pkgconfig "github.com/changomango/portfolio/pkg/config"
)

// ReloadDelay is how long the watcher waits for a burst of file events to
// settle before reloading.
const ReloadDelay = 250 * time.Millisecond

// LoadFile reads a YAML content file. The file replaces the built-in
// content entirely; it is validated before being returned. Unlike the app
// config, "$" in content is literal text.
func LoadFile(path string) (*Site, error) {
	var site Site
	if err := pkgconfig.LoadRaw(path, &site); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return &site, nil
}

// Store holds the live Site. Readers always see a complete Site.
type Store struct {
	site atomic.Pointer[Site]
}

// NewStore returns a store serving site.
func NewStore(site *Site) *Store {
	s := &Store{}
	s.site.Store(site)
	return s
}

// Current returns the live Site. Callers must treat it as read-only.
func (s *Store) Current() *Site {
	return s.site.Load()
}

// Replace swaps in a new Site.
func (s *Store) Replace(site *Site) {
	s.site.Store(site)
}

// Watch reloads path into store whenever it changes, until ctx is done.
// A file that fails to load is logged and the previous content is kept.
func Watch(ctx context.Context, path string, store *Store, logger *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file via rename.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("content watcher: watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	reload := textutil.NewDebouncer(func(string) {
		site, err := LoadFile(target)
		if err != nil {
			logger.Warn("content reload failed, keeping previous content",
				zap.String("path", target), zap.Error(err))
			return
		}
		store.Replace(site)
		logger.Info("content reloaded",
			zap.String("path", target), zap.Int("projects", len(site.Projects)))
	}, ReloadDelay)
	defer reload.Stop()

	logger.Info("content watcher started", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			logger.Info("content watcher stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				reload.Call(ev.Name)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", zap.Error(err))
		}
	}
}
