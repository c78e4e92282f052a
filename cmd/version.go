// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gover "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Version variables set at build time (e.g. with -ldflags).
var (
	Version = "0.0.0"
	commit  = "none"
	date    = "unknown"
)

const (
	repoURL             = "https://github.com/storpool/netplan-go"
	versionCheckTimeout = 5 * time.Second
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show netplan-parser version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("version: %s\n", Version)
		fmt.Printf(" commit: %s\n", commit)
		fmt.Printf("   date: %s\n", date)
		fmt.Printf(" source: %s\n", repoURL)
	},
}

// checkCmd compares the running version against the latest release
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check if a newer netplan-parser version is available",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), versionCheckTimeout)
		defer cancel()

		latest, err := getLatestVersion(ctx)
		if err != nil {
			return err
		}
		current, err := gover.NewVersion(Version)
		if err != nil {
			return err
		}
		if latest.GreaterThan(current) {
			fmt.Printf("A newer version (%s) is available, see %s/releases\n", latest, repoURL)
			return nil
		}
		fmt.Printf("You are on the latest version (%s)\n", Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.AddCommand(checkCmd)
}

// getLatestVersion fetches the latest release version from the redirect of
// the github releases page.
func getLatestVersion(ctx context.Context) (*gover.Version, error) {
	client := &http.Client{
		// don't follow redirects
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead,
		fmt.Sprintf("%s/releases/latest", repoURL), http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the latest release: %v", err)
	}
	defer resp.Body.Close()

	loc := resp.Header.Get("Location")
	parts := strings.Split(loc, "releases/tag/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("could not parse a release version from %q", loc)
	}
	return gover.NewVersion(parts[1])
}
