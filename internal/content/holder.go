package content

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce batches the burst of events an editor produces on save.
const reloadDebounce = 150 * time.Millisecond

// Holder shares the current document between goroutines. Readers must treat
// the returned *Site as read-only; a reload swaps in a new value.
type Holder struct {
	mu        sync.RWMutex
	site      *Site
	listeners []func(*Site)
}

// NewHolder wraps an already normalized and validated document.
func NewHolder(s *Site) *Holder {
	return &Holder{site: s}
}

// Get returns the current document.
func (h *Holder) Get() *Site {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.site
}

// Replace swaps in s and notifies listeners.
func (h *Holder) Replace(s *Site) {
	h.mu.Lock()
	h.site = s
	listeners := slices.Clone(h.listeners)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}

// OnReplace registers fn to be called after every Replace.
func (h *Holder) OnReplace(fn func(*Site)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Watch reloads path whenever it changes on disk until ctx is cancelled. A
// document that fails to load is logged and the previous one is kept.
func (h *Holder) Watch(ctx context.Context, path string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Editors often replace the file with a rename, so watch the directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching content", zap.String("path", abs))

	var (
		pending bool
		timer   = time.NewTimer(reloadDebounce)
	)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("content changed", zap.String("op", ev.Op.String()))
			pending = true
			timer.Reset(reloadDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			s, err := Load(abs)
			if err != nil {
				logger.Error("reloading content failed, keeping previous", zap.Error(err))
				continue
			}
			h.Replace(s)
			logger.Info("content reloaded",
				zap.Int("offerings", len(s.Offerings)),
				zap.Int("projects", len(s.Showcase.Projects)))
		}
	}
}
