package main

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDir calls cb whenever a file in dir is created, removed or renamed.
// Events arriving within a short window of each other trigger a single call.
// It blocks until ctx is cancelled.
func watchDir(ctx context.Context, dir string, cb func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	const settle = 100 * time.Millisecond
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if pending == nil {
					pending = time.After(settle)
				}
			}
		case <-pending:
			pending = nil
			cb()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Error watching %s: %s\n", dir, err)
		}
	}
}
