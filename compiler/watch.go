package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/syssam/structarith/compiler/load"
)

// DefaultDebounce is the quiet period after a schema change before the
// records are regenerated.
const DefaultDebounce = 100 * time.Millisecond

// WatchFunc receives the outcome of each generation run of Watch.
type WatchFunc func(*Result, error)

// Watch generates the schema paths, then regenerates them whenever a schema
// file in the watched directories changes, until ctx is cancelled. Failed
// runs are reported to fn and do not stop watching. The watcher is owned by
// the calling goroutine and closed before Watch returns.
func (c *Compiler) Watch(ctx context.Context, fn WatchFunc, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("compiler: no schema paths provided")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("compiler: create watcher: %w", err)
	}
	defer watcher.Close()

	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		dir := path
		if info, err := os.Stat(path); err != nil {
			return fmt.Errorf("compiler: watch: %w", err)
		} else if !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if _, ok := dirs[dir]; ok {
			continue
		}
		// Directories are watched rather than files, so atomic saves that
		// replace the file are still seen.
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("compiler: watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
		c.log.Debug("watching schema directory", zap.String("dir", dir))
	}

	run := func() {
		res, err := c.Generate(ctx, paths...)
		if err != nil && ctx.Err() != nil {
			return
		}
		if err != nil {
			c.log.Error("generation failed", zap.Error(err))
		}
		if fn != nil {
			fn(res, err)
		}
	}
	run()

	timer := time.NewTimer(DefaultDebounce)
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
			if !load.IsSchemaFile(filepath.Base(event.Name)) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			c.log.Debug("schema changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(DefaultDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.log.Error("watcher error", zap.Error(err))
		case <-timer.C:
			run()
		}
	}
}
