package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// fileStore persists the tutorial progress index as a plain integer in a
// file under the user config directory.
type fileStore struct {
	path string
}

// newFileStore picks a config path for the store. Returns nil (no
// persistence) when no config directory is available.
func newFileStore() *fileStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return &fileStore{path: filepath.Join(dir, "zzzwe", "tutorial")}
}

func (s *fileStore) LoadIndex() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func (s *fileStore) SaveIndex(index int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(strconv.Itoa(index)), 0o644)
}
