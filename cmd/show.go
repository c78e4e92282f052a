// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:     "show [interface...]",
	Short:   "show the configuration of interfaces",
	Long:    "show the merged netplan configuration of the named interfaces, or of all interfaces when no names are given",
	Aliases: []string{"s"},
	PreRunE: checkFormat,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newParser()
		if err != nil {
			return err
		}
		np, err := p.Parse()
		if err != nil {
			return err
		}
		selected, err := np.Select(args...)
		if err != nil {
			return err
		}
		return printNetPlan(selected, format)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
