// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/storpool/netplan-go/constants"
	e "github.com/storpool/netplan-go/errors"
	"github.com/storpool/netplan-go/netplan"
)

// checkFormat validates the --format flag before a command runs.
func checkFormat(_ *cobra.Command, _ []string) error {
	switch format {
	case constants.FormatNames, constants.FormatYAML, constants.FormatJSON, constants.FormatTable:
		return nil
	}
	return fmt.Errorf("%w: output format %q is not supported, use one of [%s, %s, %s, %s]",
		e.ErrIncorrectInput, format,
		constants.FormatNames, constants.FormatYAML, constants.FormatJSON, constants.FormatTable)
}

// printNetPlan renders the interfaces of np to stdout in the selected
// format.
func printNetPlan(np *netplan.NetPlan, format string) error {
	switch format {
	case constants.FormatNames:
		fmt.Println(strings.Join(np.Names(), " "))
	case constants.FormatYAML:
		b, err := yaml.Marshal(attributesByName(np))
		if err != nil {
			return fmt.Errorf("failed to marshal interface configs: %v", err)
		}
		fmt.Print(string(b))
	case constants.FormatJSON:
		b, err := json.MarshalIndent(jsonable(attributesByName(np)), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal interface configs: %v", err)
		}
		fmt.Println(string(b))
	case constants.FormatTable:
		printInterfacesTable(np)
	}
	return nil
}

// attributesByName maps interface names to their attribute mappings; this is
// the shape the yaml and json outputs use.
func attributesByName(np *netplan.NetPlan) map[string]map[string]interface{} {
	out := make(map[string]map[string]interface{}, len(np.Interfaces))
	for name, cfg := range np.Interfaces {
		out[name] = cfg.Attributes
	}
	return out
}

// jsonable rewrites decoded YAML values so that encoding/json can marshal
// them: yaml.v2 produces map[interface{}]interface{} for nested mappings,
// which json rejects.
func jsonable(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, kv := range val {
			m[k] = jsonable(kv)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, kv := range val {
			m[k] = jsonable(kv)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, kv := range val {
			m[fmt.Sprintf("%v", k)] = jsonable(kv)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(val))
		for i, item := range val {
			s[i] = jsonable(item)
		}
		return s
	default:
		return v
	}
}

func toTableData(np *netplan.NetPlan) [][]string {
	tabData := make([][]string, 0, len(np.Interfaces))
	for i, name := range np.Names() {
		cfg := np.Interfaces[name]
		related := constants.NotApplicable
		if refs := cfg.References(); len(refs) > 0 {
			related = strings.Join(refs, ", ")
		}
		tabData = append(tabData, []string{
			fmt.Sprintf("%d", i+1),
			name,
			string(cfg.Section),
			related,
		})
	}
	return tabData
}

func printInterfacesTable(np *netplan.NetPlan) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Name", "Section", "Related"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(toTableData(np))
	table.Render()
}
