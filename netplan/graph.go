// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package netplan

import (
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
	log "github.com/sirupsen/logrus"

	"github.com/storpool/netplan-go/internal/mermaid"
	"github.com/storpool/netplan-go/types"
	"github.com/storpool/netplan-go/utils"
)

// fill colors for the dot graph, keyed by section
var sectionColors = map[types.Section]string{
	types.SectionEthernets: "green",
	types.SectionWifis:     "green",
	types.SectionBonds:     "red",
	types.SectionBridges:   "red",
	types.SectionVLANs:     "blue",
}

// GenerateDotGraph renders the interface relations as a graphviz dot file.
// Edges point from an interface to the interfaces it is built on: a bond or
// bridge to its members, a vlan to its link.
func (np *NetPlan) GenerateDotGraph(name, file string) error {
	g := gographviz.NewGraph()
	// interface names contain characters like '.', so every identifier is
	// emitted quoted
	gname := strconv.Quote(name)
	if err := g.SetName(gname); err != nil {
		return err
	}
	if err := g.SetDir(true); err != nil {
		return err
	}

	var attr map[string]string

	for _, iface := range np.Names() {
		cfg := np.Interfaces[iface]
		attr = make(map[string]string)
		attr["style"] = "filled"
		attr["fillcolor"] = "grey"
		attr["label"] = strconv.Quote(iface)
		attr["xlabel"] = strconv.Quote(string(cfg.Section))
		if color, ok := sectionColors[cfg.Section]; ok {
			attr["fillcolor"] = color
			if color == "blue" {
				attr["fontcolor"] = "white"
			}
		}
		if err := g.AddNode(gname, strconv.Quote(iface), attr); err != nil {
			return err
		}
	}

	for _, iface := range np.Names() {
		cfg := np.Interfaces[iface]
		for _, ref := range cfg.References() {
			if _, ok := np.Interfaces[ref]; !ok {
				log.Debugf("not drawing edge to undefined interface %q", ref)
				continue
			}
			attr = make(map[string]string)
			attr["color"] = "black"
			if cfg.Section.HasLink() {
				attr["style"] = "dashed"
			}
			if err := g.AddEdge(strconv.Quote(iface), strconv.Quote(ref), true, attr); err != nil {
				return err
			}
		}
	}

	if err := utils.CreateFile(file, g.String()); err != nil {
		return err
	}
	log.Infof("Created %s", file)
	return nil
}

// GenerateMermaidGraph renders the interface relations as a mermaid
// flowchart.
func (np *NetPlan) GenerateMermaidGraph(title, direction, file string) error {
	fc := mermaid.NewFlowChart()

	fc.SetTitle(title)

	if err := fc.SetDirection(direction); err != nil {
		return err
	}

	for _, iface := range np.Names() {
		cfg := np.Interfaces[iface]
		isolated := len(np.referrers[iface]) == 0
		for _, ref := range cfg.References() {
			if _, ok := np.Interfaces[ref]; !ok {
				continue
			}
			isolated = false
			fc.AddDirectedEdge(iface, ref)
		}
		if isolated {
			fc.AddNode(iface)
		}
	}

	var w strings.Builder
	fc.Generate(&w)
	if err := utils.CreateFile(file, w.String()); err != nil {
		return err
	}

	log.Infof("Created mermaid diagram file: %s", file)

	return nil
}
