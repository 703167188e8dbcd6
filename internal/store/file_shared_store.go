package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

const (
	sharedBlobExt   = ".blob"
	sharedLockExt   = ".lock"
	lockRetryDelay  = 20 * time.Millisecond
	sharedFileMode  = 0o600
	sharedDirectory = 0o755
)

var sharedKeyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// sharedFileStore keeps one file per key in a directory shared by every
// process of the same user. Each key is guarded by its own advisory file
// lock so readers never observe a half-written value.
type sharedFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewSharedFileStore creates dir when missing and returns a [SharedStore]
// rooted at it.
func NewSharedFileStore(dir string, logger *logger.Logger) (SharedStore, error) {
	if dir == "" {
		return nil, errors.New("shared store dir is empty")
	}
	if err := os.MkdirAll(dir, sharedDirectory); err != nil {
		return nil, fmt.Errorf("create shared store dir: %w", err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve shared store dir: %w", err)
	}

	logger.Debug().Str("func", "NewSharedFileStore").Str("dir", abs).Msg("shared store ready")
	return &sharedFileStore{dir: abs, logger: logger}, nil
}

func (s *sharedFileStore) Dir() string {
	return s.dir
}

// KeyForPath maps a file inside the store directory back to its key.
// Lock files, temp files and foreign files are rejected.
func (s *sharedFileStore) KeyForPath(path string) (string, bool) {
	if filepath.Dir(filepath.Clean(path)) != s.dir {
		return "", false
	}

	name := filepath.Base(path)
	if !strings.HasSuffix(name, sharedBlobExt) {
		return "", false
	}

	key := strings.TrimSuffix(name, sharedBlobExt)
	if !sharedKeyPattern.MatchString(key) {
		return "", false
	}
	return key, true
}

func (s *sharedFileStore) Read(ctx context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, path, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read shared blob %q: %w", key, err)
	}

	return data, nil
}

// Write replaces the value of key through a temp file and rename.
func (s *sharedFileStore) Write(ctx context.Context, key string, data []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	unlock, err := s.lock(ctx, path, false)
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write shared blob %q: %w", key, err)
	}
	if err = tmp.Chmod(sharedFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod shared blob %q: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close shared blob %q: %w", key, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace shared blob %q: %w", key, err)
	}

	return nil
}

func (s *sharedFileStore) Delete(ctx context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	unlock, err := s.lock(ctx, path, false)
	if err != nil {
		return err
	}
	defer unlock()

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete shared blob %q: %w", key, err)
	}
	return nil
}

func (s *sharedFileStore) pathFor(key string) (string, error) {
	if !sharedKeyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobKey, key)
	}
	return filepath.Join(s.dir, key+sharedBlobExt), nil
}

// lock takes the per-key advisory lock, shared for readers and exclusive
// for writers, and returns its release function.
func (s *sharedFileStore) lock(ctx context.Context, path string, shared bool) (func(), error) {
	fl := flock.New(path + sharedLockExt)

	var (
		locked bool
		err    error
	)
	if shared {
		locked, err = fl.TryRLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = fl.TryLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", filepath.Base(path), err)
	}
	if !locked {
		return nil, fmt.Errorf("lock %s: %w", filepath.Base(path), ctx.Err())
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn().Err(err).Str("func", "sharedFileStore.lock").Str("path", path).Msg("failed to release lock")
		}
	}, nil
}
