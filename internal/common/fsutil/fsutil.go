// Package fsutil resolves file paths given on the gattmon command line.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by ResolveFile for a path with nothing behind it.
var ErrNotFound = errors.New("file not found")

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// ResolveFile expands path and checks that it names a regular file. The
// expanded path is returned even on error so callers can report it.
func ResolveFile(path string) (string, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return path, err
	}
	fi, err := os.Stat(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return p, fmt.Errorf("%w: %s", ErrNotFound, p)
	case err != nil:
		return p, err
	case fi.IsDir():
		return p, fmt.Errorf("%s is a directory", p)
	}
	return p, nil
}
