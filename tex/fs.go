package tex

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/texref/errors"
)

// FileSystem is the engine's external collaborator for file enumeration and
// reads. Implementations must be safe for read-only concurrent use; tests
// substitute an in-memory map.
type FileSystem interface {
	// ListFiles returns the paths of regular files in dir whose name ends in
	// one of the given extensions.
	ListFiles(dir string, extensions []string) ([]string, error)
	// ReadFile returns the full text content of path.
	ReadFile(path string) (string, error)
}

// OSFileSystem reads from the local filesystem.
type OSFileSystem struct{}

// ListFiles enumerates matching regular files directly inside dir.
// Enumeration does not recurse; a LaTeX project's sources sit side by side
// with their bibliography.
func (OSFileSystem) ListFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, ext := range extensions {
			if strings.HasSuffix(entry.Name(), ext) {
				paths = append(paths, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	return paths, nil
}

// ReadFile returns the file's content as a string.
func (OSFileSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(errors.ErrNotFound, "reading %s", path)
		}
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}
