package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events an editor save produces.
const reloadDebounce = 200 * time.Millisecond

// Watch reloads path whenever it changes until ctx is done. Successful
// reloads are passed to onChange, load and watcher failures to onError.
// Both callbacks run on the watcher goroutine. Unlike Load, a reload never
// recreates a missing file.
//
// The parent directory is watched so that editors replacing the file by
// rename are seen.
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("config: watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(reloadDebounce)
		timer.Stop()
		pending := false

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return

			case <-timer.C:
				if !pending {
					continue
				}
				pending = false
				cfg, err := read(abs)
				if err != nil {
					onError(err)
					continue
				}
				onChange(cfg)

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				if !pending {
					pending = true
					timer.Reset(reloadDebounce)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onError(fmt.Errorf("config: watch: %w", err))
			}
		}
	}()
	return nil
}
