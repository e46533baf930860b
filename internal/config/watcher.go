package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 200 * time.Millisecond

// Watch reloads the config file whenever it changes and sends each
// successfully parsed result on the returned channel. The channel is closed
// when ctx is done. The parent directory is watched so editors that replace
// the file on save are seen.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan *Config, 1)
	name := filepath.Clean(path)

	go func() {
		defer watcher.Close()

		var (
			mu     sync.Mutex
			timer  *time.Timer
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			close(out)
		}()

		reload := func() {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			cfg, err := LoadFrom(path)
			if err != nil {
				slog.Warn("config: reload failed", "path", path, "error", err)
				return
			}
			// Keep only the newest config if the reader is behind.
			select {
			case <-out:
			default:
			}
			out <- cfg
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, reload)
				mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("config: watch error", "error", err)
			}
		}
	}()

	return out, nil
}
