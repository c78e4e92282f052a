// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/storpool/netplan-go/constants"
	"github.com/storpool/netplan-go/netplan"
	"github.com/storpool/netplan-go/utils"
)

var debug bool

// directories to read netplan config from, in order of increasing precedence
var configDirs []string

// config file basenames to skip
var excludes []string

// output format
var format string

var expandEnv bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "netplan-parser",
	Short: "parse netplan configuration and query interface relations",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
	rootCmd.PersistentFlags().StringSliceVarP(&configDirs, "config-dir", "r", defaultConfigDirs(),
		"directories to read netplan config from, in order of increasing precedence")
	rootCmd.PersistentFlags().StringSliceVarP(&excludes, "exclude", "x", nil,
		"config file basenames to skip")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", constants.FormatNames,
		"output format. One of [names, yaml, json, table]")
	rootCmd.PersistentFlags().BoolVarP(&expandEnv, "expand-env", "", false,
		"expand environment variables in config files")
}

// defaultConfigDirs returns the built-in netplan directories, unless the
// NETPLAN_PARSER_DIRS env var overrides them.
func defaultConfigDirs() []string {
	if dirs := os.Getenv(constants.NetplanEnvConfigDirs); dirs != "" {
		return strings.Split(dirs, ":")
	}
	return netplan.DefaultConfigDirs
}

// newParser builds a parser from the persistent flags.
func newParser() (*netplan.Parser, error) {
	dirs := make([]string, 0, len(configDirs))
	for _, dir := range configDirs {
		resolved, err := utils.ResolvePath(dir)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, resolved)
	}
	opts := []netplan.Option{
		netplan.WithConfigDirs(dirs...),
		netplan.WithExcludes(excludes...),
	}
	if expandEnv {
		opts = append(opts, netplan.WithEnvExpansion())
	}
	return netplan.NewParser(opts...), nil
}
