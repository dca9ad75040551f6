// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carvel.dev/sti/pkg/cmd/ui"
	"github.com/fsnotify/fsnotify"
)

// Watcher runs a function once and then again after every change to one
// of the watched files. Parent directories are watched (rather than the files
// themselves) so that editors replacing a file on save are noticed too.
// Given directories are watched with all of their subdirectories.
type Watcher struct {
	paths map[string]struct{}
	ui    ui.UI

	// any change inside of these directories counts
	dirs map[string]struct{}

	ignoredFile string
	ignoredDir  string
}

func NewWatcher(paths []string, ui ui.UI) *Watcher {
	w := &Watcher{paths: map[string]struct{}{}, ui: ui, dirs: map[string]struct{}{}}
	for _, path := range paths {
		w.paths[w.normalize(path)] = struct{}{}
	}
	return w
}

// IgnoreOutputs skips changes made by writing results: anything inside
// the output directory, and the output file together with the temporary
// files written next to it. Either may be empty.
func (w *Watcher) IgnoreOutputs(file, dir string) {
	if len(file) > 0 {
		w.ignoredFile = w.normalize(file)
	}
	if len(dir) > 0 {
		w.ignoredDir = w.normalize(dir)
	}
}

// Run blocks until ctx is done. Errors returned by runFunc are reported
// as warnings and do not stop watching.
func (w *Watcher) Run(ctx context.Context, runFunc func() error) error {
	if len(w.paths) == 0 {
		return fmt.Errorf("Expected at least one local file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("Creating file watcher: %s", err)
	}
	defer watcher.Close()

	watchedDirs := map[string]struct{}{}
	for path := range w.paths {
		dirs, err := w.dirsToWatch(path)
		if err != nil {
			return err
		}
		for _, dir := range dirs {
			if _, found := watchedDirs[dir]; found {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("Watching directory '%s': %s", dir, err)
			}
			watchedDirs[dir] = struct{}{}
		}
	}

	w.run(runFunc)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			w.ui.Debugf("changed: %s\n", event.Name)
			w.run(runFunc)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("Watching files: %s", err)
		}
	}
}

func (w *Watcher) dirsToWatch(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return []string{filepath.Dir(path)}, nil
	}

	var result []string
	err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || !fi.IsDir() {
			return err
		}
		if w.ignored(walkedPath) {
			return filepath.SkipDir
		}
		w.dirs[walkedPath] = struct{}{}
		result = append(result, walkedPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Listing directory '%s': %s", path, err)
	}
	return result, nil
}

func (w *Watcher) matches(eventPath string) bool {
	path := w.normalize(eventPath)
	if w.ignored(path) {
		return false
	}
	if _, found := w.paths[path]; found {
		return true
	}
	_, found := w.dirs[filepath.Dir(path)]
	return found
}

func (w *Watcher) ignored(path string) bool {
	if len(w.ignoredDir) > 0 {
		if path == w.ignoredDir || strings.HasPrefix(path, w.ignoredDir+string(filepath.Separator)) {
			return true
		}
	}
	if len(w.ignoredFile) > 0 && filepath.Dir(path) == filepath.Dir(w.ignoredFile) {
		// atomic writes go through temp files named after the output file
		// followed by random digits
		name := filepath.Base(path)
		prefix := filepath.Base(w.ignoredFile)
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		return strings.Trim(strings.TrimPrefix(name, prefix), "0123456789") == ""
	}
	return false
}

func (w *Watcher) run(runFunc func() error) {
	if err := runFunc(); err != nil {
		w.ui.Warnf("sti: Error: %s\n", err)
	}
}

func (w *Watcher) normalize(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return absPath
}
