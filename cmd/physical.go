// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// physicalCmd represents the physical command
var physicalCmd = &cobra.Command{
	Use:     "physical [interface...]",
	Short:   "show the physical interfaces the named ones are built on",
	Long:    "show the physical interfaces found in the relation closure of the named interfaces; virtual interfaces are traversed but not shown",
	Aliases: []string{"phys", "p"},
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
		physical, err := np.GetPhysicalInterfaces(args...)
		if err != nil {
			return err
		}
		return printNetPlan(physical, format)
	},
}

func init() {
	rootCmd.AddCommand(physicalCmd)
}
