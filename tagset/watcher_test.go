package tagset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitUpdate(t *testing.T, w *Watcher) Update {
	t.Helper()
	select {
	case u, ok := <-w.Updates():
		require.True(t, ok, "updates channel closed")
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Update{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - name: a\n    tags: [x]\n"), 0644))

	w, err := Watch(context.Background(), path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - name: a\n    tags: [x, y, z]\n"), 0644))

	u := waitUpdate(t, w)
	require.NoError(t, u.Err)
	require.Len(t, u.Board.Rows, 1)
	assert.Equal(t, []string{"x", "y", "z"}, u.Board.Rows[0].Names())
}

func TestWatcherReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": [{"name": "a"}]}`), 0644))

	w, err := Watch(context.Background(), path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"rows": [`), 0644))

	u := waitUpdate(t, w)
	assert.Error(t, u.Err)
	assert.Nil(t, u.Board)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - name: a\n"), 0644))

	w, err := Watch(context.Background(), path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case u := <-w.Updates():
		t.Fatalf("unexpected update: %+v", u)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseClosesUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - name: a\n"), 0644))

	w, err := Watch(context.Background(), path, 0)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))

	require.NoError(t, w.Close())
	_, ok := <-w.Updates()
	assert.False(t, ok)
}
