package mermaid

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// A very minimalistic Mermaid flowchart generator
// that covers the usecase of `netplan-parser graph`
// command.

type FlowChart struct {
	title     string
	direction string
	nodes     []string
	edges     []Edge
}

type Edge struct {
	nodeA string
	nodeB string
}

func NewFlowChart() *FlowChart {
	return &FlowChart{
		nodes: []string{},
		edges: []Edge{},
	}
}

func (fc *FlowChart) SetTitle(title string) {
	fc.title = title
}

func (fc *FlowChart) SetDirection(direction string) error {
	validDirections := []string{"TB", "TD", "BT", "RL", "LR"}
	if !slices.Contains(validDirections, direction) {
		return fmt.Errorf("invalid direction %s (should be one of %v)", direction, validDirections)
	}
	fc.direction = direction
	return nil
}

// AddNode records a node with no edges so it still shows up in the chart.
func (fc *FlowChart) AddNode(node string) {
	if !slices.Contains(fc.nodes, node) {
		fc.nodes = append(fc.nodes, node)
	}
}

func (fc *FlowChart) AddDirectedEdge(nodeA, nodeB string) {
	fc.edges = append(fc.edges, Edge{nodeA: nodeA, nodeB: nodeB})
}

func (fc *FlowChart) Generate(w io.Writer) {
	fmt.Fprintf(w, "---\n")
	fmt.Fprintf(w, "title: %s\n", fc.title)
	fmt.Fprintf(w, "---\n")
	fmt.Fprintf(w, "graph %s\n", fc.direction)
	for _, node := range fc.nodes {
		fmt.Fprintf(w, "  %s\n", node)
	}
	for _, edge := range fc.edges {
		fmt.Fprintf(w, "  %s-->%s\n", edge.nodeA, edge.nodeB)
	}
}
