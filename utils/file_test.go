package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	e "github.com/storpool/netplan-go/errors"
)

func TestCreateFileAndReadBack(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "10-test.yaml")

	if err := CreateFile(file, "network:"); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Fatalf("wanted %s to exist", file)
	}
	if DirExists(file) {
		t.Fatalf("wanted %s to not be a directory", file)
	}
	if !DirExists(dir) {
		t.Fatalf("wanted %s to be a directory", dir)
	}
	if FileExists(dir) {
		t.Fatalf("wanted FileExists to be false for the directory %s", dir)
	}

	b, err := ReadFileContent(file)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("network:\n", string(b)); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFileContentMissing(t *testing.T) {
	_, err := ReadFileContent(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, e.ErrFileNotFound) {
		t.Fatalf("wanted ErrFileNotFound got %v", err)
	}
}

func TestCreateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	CreateDirectory(path, 0755)
	if !DirExists(path) {
		t.Fatalf("wanted %s to be created", path)
	}

	// creating an existing directory is a no-op
	CreateDirectory(path, 0755)
	if !DirExists(path) {
		t.Fatalf("wanted %s to survive a second create", path)
	}
}

func TestFileExistsMissing(t *testing.T) {
	if FileExists(filepath.Join(os.TempDir(), "netplan-go-does-not-exist")) {
		t.Fatal("wanted FileExists to be false for a missing path")
	}
}
