// Package assets resolves and renders the files bundled with guestprep:
// unattended-install descriptions under auto/ and guest tools under
// guesttools/, both rooted at the configured data directory.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/virtbuild/guestprep/internal/utils"
)

const (
	autoInstallDir = "auto"
	guestToolsDir  = "guesttools"
)

// Store resolves bundled asset paths below a data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{dir: dataDir}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// AutoInstallPath returns the absolute path of an unattended-install
// asset. The asset must exist.
func (s *Store) AutoInstallPath(relative string) (string, error) {
	return s.resolve(autoInstallDir, relative)
}

// GuestToolsPath returns the absolute path of a guest tools asset.
// The asset must exist.
func (s *Store) GuestToolsPath(relative string) (string, error) {
	return s.resolve(guestToolsDir, relative)
}

func (s *Store) resolve(subdir, relative string) (string, error) {
	path, err := filepath.Abs(filepath.Join(s.dir, subdir, relative))
	if err != nil {
		return "", fmt.Errorf("failed to resolve asset path: %w", err)
	}
	if !utils.Exists(path) {
		return "", fmt.Errorf("asset not found: %s", path)
	}
	return path, nil
}
