package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

func newTestSharedStore(t *testing.T) SharedStore {
	t.Helper()

	s, err := NewSharedFileStore(filepath.Join(t.TempDir(), "group"), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestSharedFileStore_ReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestSharedStore(t)

	_, err := s.Read(ctx, "english.progress")
	require.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, s.Write(ctx, "english.progress", []byte(`{"level":2}`)))
	got, err := s.Read(ctx, "english.progress")
	require.NoError(t, err)
	assert.Equal(t, `{"level":2}`, string(got))

	info, err := os.Stat(filepath.Join(s.Dir(), "english.progress.blob"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(sharedFileMode), info.Mode().Perm())

	require.NoError(t, s.Delete(ctx, "english.progress"))
	_, err = s.Read(ctx, "english.progress")
	assert.ErrorIs(t, err, ErrBlobNotFound)
	assert.NoError(t, s.Delete(ctx, "english.progress"))
}

func TestSharedFileStore_NoTempLeftovers(t *testing.T) {
	ctx := context.Background()
	s := newTestSharedStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Write(ctx, "stats", []byte(`{}`)))
	}

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestSharedFileStore_InvalidKey(t *testing.T) {
	ctx := context.Background()
	s := newTestSharedStore(t)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		assert.ErrorIs(t, s.Write(ctx, key, []byte("x")), ErrInvalidBlobKey, key)
		_, err := s.Read(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidBlobKey, key)
	}
}

func TestSharedFileStore_KeyForPath(t *testing.T) {
	s := newTestSharedStore(t)
	dir := s.Dir()

	tests := []struct {
		path   string
		key    string
		wantOK bool
	}{
		{path: filepath.Join(dir, "theme.blob"), key: "theme", wantOK: true},
		{path: filepath.Join(dir, "settings.sound.blob"), key: "settings.sound", wantOK: true},
		{path: filepath.Join(dir, "theme.blob.lock")},
		{path: filepath.Join(dir, ".theme-123.tmp")},
		{path: filepath.Join(dir, "notes.txt")},
		{path: filepath.Join(dir, "sub", "theme.blob")},
	}

	for _, tt := range tests {
		key, ok := s.KeyForPath(tt.path)
		assert.Equal(t, tt.wantOK, ok, tt.path)
		assert.Equal(t, tt.key, key, tt.path)
	}
}

func TestSharedFileStore_WaitsForLock(t *testing.T) {
	s := newTestSharedStore(t)

	other := flock.New(filepath.Join(s.Dir(), "theme.blob.lock"))
	require.NoError(t, other.Lock())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := s.Write(ctx, "theme", []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, other.Unlock())
	assert.NoError(t, s.Write(context.Background(), "theme", []byte(`{}`)))
}

func TestSharedFileStore_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := newTestSharedStore(t)

	values := []string{`{"v":1}`, `{"v":2}`, `{"v":3}`, `{"v":4}`}

	var wg sync.WaitGroup
	for _, v := range values {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			assert.NoError(t, s.Write(ctx, "stats", []byte(v)))
		}(v)
	}
	wg.Wait()

	got, err := s.Read(ctx, "stats")
	require.NoError(t, err)
	assert.Contains(t, values, string(got))
}
