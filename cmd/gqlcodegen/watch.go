package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// watch calls run after schema files below paths change, until ctx is done.
// Events arriving within the debounce window trigger a single run.
func watch(ctx context.Context, paths []string, logger *slog.Logger, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs, err := watchDirs(paths)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Info("watching schemas", "dirs", dirs)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isSchemaFile(event.Name) || !isWriteOrCreate(event.Op) {
				continue
			}
			logger.Debug("schema changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			if err := run(); err != nil {
				logger.Error("generation failed", "error", err)
			}
		}
	}
}

func isWriteOrCreate(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create)
}

// watchDirs returns the directories to watch: directories as given and the
// parent of each file, without duplicates.
func watchDirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", p, err)
		}
		dir := p
		if !info.IsDir() {
			dir = filepath.Dir(p)
		}
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}
