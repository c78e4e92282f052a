// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/storpool/netplan-go/utils"
)

const graphName = "netplan"

var genMermaid bool
var mermaidDirection string
var graphOutput string

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [interface...]",
	Short: "generate a graph of the interface relations",
	Long:  "generate a graphviz or mermaid graph of the relations between the configured interfaces; with interface names given, only their relation closure is drawn",

	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newParser()
		if err != nil {
			return err
		}
		np, err := p.Parse()
		if err != nil {
			return err
		}
		np, err = np.GetAllInterfaces(args...)
		if err != nil {
			return err
		}

		file, err := utils.ResolvePath(graphOutput)
		if err != nil {
			return err
		}
		if file == "" {
			file = graphName + ".dot"
			if genMermaid {
				file = graphName + ".mermaid"
			}
		}
		utils.CreateDirectory(filepath.Dir(file), 0755)

		if genMermaid {
			return np.GenerateMermaidGraph(graphName, mermaidDirection, file)
		}
		return np.GenerateDotGraph(graphName, file)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "",
		"file to write the graph to (default netplan.dot or netplan.mermaid)")
	graphCmd.Flags().BoolVarP(&genMermaid, "mermaid", "", false, "generate a mermaid flowchart instead of a dot file")
	graphCmd.Flags().StringVarP(&mermaidDirection, "mermaid-direction", "", "TB", "specify direction of mermaid diagram")
}
