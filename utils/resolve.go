package utils

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ResolvePath expands a leading ~ in p to the user's home directory and
// makes the result absolute.
func ResolvePath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if strings.HasPrefix(p, "~") {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return "", err
		}
		return expanded, nil
	}
	return filepath.Abs(p)
}
