package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// filePrefix is prepended to every key to form its file name.
const filePrefix = ".limon-"

// FileStore keeps each key in its own file under dir.
// Concurrent invocations sharing a key can race; the last writer wins.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. Nothing is touched on disk
// until the first Persist.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file backing key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, filePrefix+sanitizeKey(key))
}

// Persist reads the previous contents of key's file, if any, and then
// overwrites it with value. Any read failure counts as "nothing stored".
func (s *FileStore) Persist(_ context.Context, key, value string) (string, bool, error) {
	path := s.Path(key)

	var previous string
	data, readErr := os.ReadFile(path)
	if readErr == nil {
		previous = string(data)
	}

	if err := os.WriteFile(path, []byte(value), 0600); err != nil {
		return "", false, fmt.Errorf("write state %s: %w", path, err)
	}

	return previous, readErr == nil, nil
}

// Close does nothing; files are written synchronously.
func (s *FileStore) Close() error {
	return nil
}
