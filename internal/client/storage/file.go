package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aadarshprajapati/docuchat-cli/internal/common"
	"github.com/aadarshprajapati/docuchat-cli/internal/filex"
)

// FileStore keeps the token in a single owner-only file.
type FileStore struct {
	path string
}

// NewFileStore uses the given file path as the token location.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultFileStore places the token under the per-user config dir, e.g.
// ~/.config/docuchat/token.
func DefaultFileStore() (*FileStore, error) {
	dir, err := filex.AppConfigDir(common.AppDirName)
	if err != nil {
		return nil, fmt.Errorf("resolve token location: %w", err)
	}
	return NewFileStore(filepath.Join(dir, common.TokenFileName)), nil
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *FileStore) Save(token string) error {
	return filex.WriteSecret(s.path, []byte(token))
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
