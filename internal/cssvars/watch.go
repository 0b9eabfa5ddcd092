package cssvars

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultWatchDebounce is how long Watch waits for more changes before linting again
const DefaultWatchDebounce = 200 * time.Millisecond

// stylesheetExts are the extensions that trigger a new lint run
var stylesheetExts = map[string]bool{
	".css":  true,
	".scss": true,
	".less": true,
}

// WatchOptions configures Watch
type WatchOptions struct {
	Debounce time.Duration // 0 = DefaultWatchDebounce

	// OnResult receives every completed lint run, starting with the initial one
	OnResult func(*LintResult)
}

// Watch lints once and then again whenever a stylesheet below the scan
// patterns' base directories changes. Parsed files are cached between runs.
// It blocks until ctx is done and returns nil on cancellation.
func Watch(ctx context.Context, config LintConfig, opts WatchOptions) error {
	if config.Rule == nil {
		return ErrNoRule
	}
	if opts.OnResult == nil {
		return errors.New("watch requires an OnResult callback")
	}
	logger := loggerOrDiscard(config.Logger)

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	if config.Cache == nil {
		cache, err := NewDeclarationCache(0)
		if err != nil {
			return err
		}
		config.Cache = cache
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, root := range watchRoots(config.ScanPaths) {
		addWatchesRecursive(fsw, root, logger)
	}

	run := func() error {
		result, err := Lint(ctx, config)
		if err != nil {
			return err
		}
		opts.OnResult(result)
		return nil
	}

	if err := run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					addWatchesRecursive(fsw, event.Name, logger)
					pending = true
					continue
				}
			}
			if isStylesheet(event.Name) {
				logger.WithFields(logrus.Fields{
					"file": event.Name,
					"op":   event.Op.String(),
				}).Debug("stylesheet changed")
				pending = true
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("watcher error")

		case <-ticker.C:
			if !pending {
				continue
			}
			pending = false
			if err := run(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.WithError(err).Error("lint run failed")
			}
		}
	}
}

// watchRoots returns the existing base directories of the scan patterns
func watchRoots(patterns []string) []string {
	seen := make(map[string]bool)
	var roots []string

	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		root := filepath.FromSlash(base)

		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			root = filepath.Dir(root)
		}
		if seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}

	return roots
}

// addWatchesRecursive watches root and every directory below it,
// skipping hidden directories and node_modules
func addWatchesRecursive(fsw *fsnotify.Watcher, root string, logger logrus.FieldLogger) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		base := d.Name()
		if path != root && (base == "node_modules" || strings.HasPrefix(base, ".")) {
			return filepath.SkipDir
		}

		if err := fsw.Add(path); err != nil {
			logger.WithField("dir", path).WithError(err).Warn("failed to watch directory")
			return nil
		}
		logger.WithField("dir", path).Debug("watching directory")
		return nil
	})
	if err != nil {
		logger.WithField("dir", root).WithError(err).Warn("failed to walk directory")
	}
}

// isStylesheet reports whether path has a linted extension
func isStylesheet(path string) bool {
	return stylesheetExts[strings.ToLower(filepath.Ext(path))]
}
