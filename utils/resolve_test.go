package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolvePath(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]struct {
		path string
		want string
	}{
		"empty path stays empty": {
			path: "",
			want: "",
		},
		"absolute path kept": {
			path: "/etc/netplan",
			want: "/etc/netplan",
		},
		"relative path anchored to the working directory": {
			path: "test_data",
			want: filepath.Join(cwd, "test_data"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ResolvePath(tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ResolvePath(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
		})
	}
}

func TestResolvePathHome(t *testing.T) {
	got, err := ResolvePath("~/netplan")
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(got, "~") {
		t.Fatalf("wanted the ~ expanded got '%s'", got)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("wanted an absolute path got '%s'", got)
	}
	if !strings.HasSuffix(got, "/netplan") {
		t.Fatalf("wanted a path ending in /netplan got '%s'", got)
	}
}
