// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	e "github.com/storpool/netplan-go/errors"
	"github.com/storpool/netplan-go/utils"
)

func TestShowCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"show", "-r", "test_data/etc/netplan"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
}

func TestRelatedCommandMissingInterface(t *testing.T) {
	rootCmd.SetArgs([]string{"related", "-r", "test_data/etc/netplan", "nope"})
	err := rootCmd.Execute()
	if !errors.Is(err, e.ErrInterfaceNotFound) {
		t.Fatalf("wanted ErrInterfaceNotFound got %v", err)
	}
}

func TestGraphCommand(t *testing.T) {
	// the graphs subdirectory does not exist yet and must be created
	out := filepath.Join(t.TempDir(), "graphs", "netplan.dot")
	rootCmd.SetArgs([]string{"graph", "-r", "test_data/etc/netplan", "-o", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !utils.FileExists(out) {
		t.Fatalf("wanted graph file %s to be created", out)
	}
}
