// Package blob stores uploaded binary objects (avatars) on the local
// filesystem under a configured root directory.
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes objects to disk under a root directory. Object keys
// are relative paths within the root; callers persist the key, not the
// absolute path.
type LocalStore struct {
	root string
}

// NewLocalStore creates the root directory if needed and returns a store.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create blob root %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Save writes data under a fresh random name with the given extension
// (".png", ".jpg", …) and returns the object key.
func (s *LocalStore) Save(data []byte, ext string) (string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	key := uuid.New().String() + strings.ToLower(ext)

	if err := os.WriteFile(filepath.Join(s.root, key), data, 0644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", key, err)
	}
	return key, nil
}

// Remove deletes an object by key. Removing an absent object is a no-op.
func (s *LocalStore) Remove(key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob %s: %w", key, err)
	}
	return nil
}

// Open returns the absolute path for a stored key, rejecting keys that
// escape the root.
func (s *LocalStore) Open(key string) (string, error) {
	clean := filepath.Clean(key)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	path := filepath.Join(s.root, clean)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat blob %s: %w", key, err)
	}
	return path, nil
}
