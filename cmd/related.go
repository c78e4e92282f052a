// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// relatedCmd represents the related command
var relatedCmd = &cobra.Command{
	Use:     "related [interface...]",
	Short:   "show interfaces related to the named ones",
	Long:    "show the named interfaces together with everything they are built on and everything built on them, following bond and bridge members and vlan links in both directions",
	Aliases: []string{"rel", "r"},
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
		related, err := np.GetAllInterfaces(args...)
		if err != nil {
			return err
		}
		return printNetPlan(related, format)
	},
}

func init() {
	rootCmd.AddCommand(relatedCmd)
}
