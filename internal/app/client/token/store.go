// Package token persists the bearer token between CLI invocations.
package token

import (
	"fmt"
	"os"
	"strings"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("token not found, run: taskpad auth login")
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(bearer string) error {
	// 0600: the token grants full account access.
	return os.WriteFile(s.path, []byte(bearer), 0600)
}

func (s *FileStore) Clear() error {
	return os.Remove(s.path)
}
