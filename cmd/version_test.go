// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/h2non/gock"
)

func TestGetLatestVersion(t *testing.T) {
	// mock the http client, to be able to inject the release redirect
	defer gock.Off()
	gock.New("https://github.com").
		Head("/storpool/netplan-go/releases/latest").
		Reply(302).
		SetHeader("Location", repoURL+"/releases/tag/v0.5.1")

	ctx, cancel := context.WithTimeout(context.Background(), versionCheckTimeout)
	defer cancel()

	latest, err := getLatestVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if latest.String() != "0.5.1" {
		t.Fatalf("wanted '0.5.1' got '%s'", latest)
	}
}

func TestGetLatestVersionNoRedirect(t *testing.T) {
	defer gock.Off()
	gock.New("https://github.com").
		Head("/storpool/netplan-go/releases/latest").
		Reply(200)

	ctx, cancel := context.WithTimeout(context.Background(), versionCheckTimeout)
	defer cancel()

	_, err := getLatestVersion(ctx)
	if err == nil {
		t.Fatal("wanted an error when the response carries no release redirect")
	}
	if !strings.Contains(err.Error(), "could not parse a release version") {
		t.Fatalf("wanted a release parse error got %v", err)
	}
}

func TestVersionCheckCommand(t *testing.T) {
	defer gock.Off()
	gock.New("https://github.com").
		Head("/storpool/netplan-go/releases/latest").
		Reply(302).
		SetHeader("Location", repoURL+"/releases/tag/v99.0.0")

	rootCmd.SetArgs([]string{"version", "check"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
}
