// Package state keeps the last raw reading of each counter between runs so
// rate metrics can be computed as "since the previous invocation".
package state

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// RuntimeDirEnv names the environment variable holding the preferred state
// directory.
const RuntimeDirEnv = "XDG_RUNTIME_DIR"

// Store persists one serialized value per key.
type Store interface {
	// Persist records value under key and returns what was stored before.
	// found is false when nothing was stored yet; that is not an error.
	Persist(ctx context.Context, key, value string) (previous string, found bool, err error)
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ResolveDir picks the directory state lives in: the runtime directory from
// the environment if set, the platform temporary directory otherwise.
func ResolveDir(getenv func(string) string) string {
	if dir := getenv(RuntimeDirEnv); dir != "" {
		return dir
	}
	return os.TempDir()
}

// Open returns the store for backend. dir is used by the file backend, path by
// the SQLite one.
func Open(backend Backend, dir, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir), nil
	case BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", backend)
	}
}

// sanitizeKey makes key safe to use as a single path element.
func sanitizeKey(key string) string {
	return strings.NewReplacer("/", "-", "\\", "-", "\x00", "").Replace(key)
}
