package trace

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRequiresExistingFile(t *testing.T) {
	t.Parallel()

	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestWatcherEmitsInitialAndChangedContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte("O R II"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	contents, err := w.Watch(ctx)
	require.NoError(t, err)

	// Initial contents arrive without any change.
	select {
	case got := <-contents:
		assert.Equal(t, "O R II", got)
	case <-ctx.Done():
		t.Fatal("timed out waiting for initial contents")
	}

	require.NoError(t, os.WriteFile(path, []byte("O R II P Q V ✓ ✓ O"), 0o644))

	// The updated contents arrive via event or poll; unchanged re-reads
	// are suppressed so the next message is the new text.
	select {
	case got := <-contents:
		assert.Equal(t, "O R II P Q V ✓ ✓ O", got)
	case <-ctx.Done():
		t.Fatal("timed out waiting for updated contents")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte("O"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte("O"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	contents, err := w.Watch(ctx)
	require.NoError(t, err)

	<-contents // initial emit
	cancel()

	select {
	case _, open := <-contents:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
