// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"

	e "github.com/storpool/netplan-go/errors"
)

func FileExists(filename string) bool {
	f, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !f.IsDir()
}

func DirExists(path string) bool {
	f, err := os.Stat(path)
	if err != nil {
		return false
	}
	return f.IsDir()
}

// CreateFile writes content to a file by path `file`
func CreateFile(file, content string) error {
	var f *os.File
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(content + "\n"); err != nil {
		return err
	}

	return nil
}

// CreateDirectory creates a directory by a path with a mode/permission specified by perm.
// If directory exists, the function does not do anything.
func CreateDirectory(path string, perm os.FileMode) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = os.MkdirAll(path, perm)
	}
}

func ReadFileContent(file string) ([]byte, error) {
	// check file exists
	if !FileExists(file) {
		return nil, fmt.Errorf("%w: %s", e.ErrFileNotFound, file)
	}

	// read and return file content
	b, err := os.ReadFile(file)
	return b, err
}
