package util

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath resolves a leading ~ to the user's home directory and cleans
// the result. Empty paths are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(expanded), nil
}
