package cssvars

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.css")
	require.NoError(t, os.WriteFile(path, []byte("a { color: red }"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan *LintResult, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, LintConfig{
			Rule:      testRule(t),
			ScanPaths: []string{filepath.ToSlash(dir) + "/**/*.css"},
		}, WatchOptions{
			Debounce: 20 * time.Millisecond,
			OnResult: func(r *LintResult) { results <- r },
		})
	}()

	select {
	case r := <-results:
		assert.Equal(t, 1, r.Violations)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial lint result")
	}

	require.NoError(t, os.WriteFile(path, []byte("a { color: $brand-primary }"), 0644))

	deadline := time.After(5 * time.Second)
	for fixed := false; !fixed; {
		select {
		case r := <-results:
			fixed = r.Violations == 0
		case <-deadline:
			t.Fatal("change was not linted")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchRequiresRuleAndCallback(t *testing.T) {
	err := Watch(context.Background(), LintConfig{}, WatchOptions{OnResult: func(*LintResult) {}})
	require.ErrorIs(t, err, ErrNoRule)

	err = Watch(context.Background(), LintConfig{Rule: testRule(t)}, WatchOptions{})
	require.Error(t, err)
}

func TestWatchRoots(t *testing.T) {
	dir := t.TempDir()
	styles := filepath.Join(dir, "styles")
	require.NoError(t, os.MkdirAll(styles, 0755))

	roots := watchRoots([]string{
		filepath.ToSlash(styles) + "/**/*.scss",
		filepath.ToSlash(styles) + "/*.css",
		filepath.ToSlash(dir) + "/missing/**/*.css",
	})
	assert.Equal(t, []string{styles}, roots)
}

func TestIsStylesheet(t *testing.T) {
	assert.True(t, isStylesheet("a.css"))
	assert.True(t, isStylesheet("dir/b.SCSS"))
	assert.True(t, isStylesheet("c.less"))
	assert.False(t, isStylesheet("d.go"))
	assert.False(t, isStylesheet("styles"))
}
