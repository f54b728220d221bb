// Package fsutil creates and removes working directories.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrNoParent is returned when CreateDirectory is called without a parent.
var ErrNoParent = errors.New("parent directory is required")

// DirPerm is the permission used for created directories.
const DirPerm os.FileMode = 0o755

// CreateDirectory creates name under parent, including any missing
// intermediate directories, and returns the resulting path. An absolute
// name is used as is and parent is ignored. If anything already exists at
// the path, even a regular file, the path is returned unchanged.
func CreateDirectory(fs afero.Fs, name, parent string) (string, error) {
	if parent == "" {
		return "", ErrNoParent
	}

	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(parent, name)
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", path)
	}
	if exists {
		return path, nil
	}

	if err := fs.MkdirAll(path, DirPerm); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", path)
	}
	return path, nil
}

// DeleteDirectory removes path and everything under it if path is a
// directory. A missing path or a non-directory is left alone.
func DeleteDirectory(fs afero.Fs, path string) error {
	isDir, err := afero.DirExists(fs, path)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	if !isDir {
		return nil
	}

	if err := fs.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "failed to delete directory %s", path)
	}
	return nil
}
