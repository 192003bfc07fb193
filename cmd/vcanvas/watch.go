package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/vcanvas"
)

// settle is how long a burst of events must be quiet before onChange runs.
const settle = 100 * time.Millisecond

// watchFile calls onChange after path is written or created, until ctx is
// done. The parent directory is watched so that
// editors replacing the file are seen.
func watchFile(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	vcanvas.Logger().Debug("watching", "path", abs)

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			vcanvas.Logger().Debug("change", "op", ev.Op.String(), "path", ev.Name)
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			vcanvas.Logger().Warn("watch error", "err", err)
		case <-timer.C:
			onChange()
		}
	}
}
