// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NodeType categorizes a graph node.
type NodeType string

const (
	NodeDiscipline NodeType = "discipline"
	NodeSection    NodeType = "section"
	NodeSoftware   NodeType = "software"
	NodeLitMain    NodeType = "lit_main"
	NodeLitAdd     NodeType = "lit_add"
	NodeDirection  NodeType = "direction"
	NodeSuperRoot  NodeType = "super_root"
)

// GraphNode is one vertex of the visualization graph. Data carries the
// payload of the entity the node was derived from.
type GraphNode struct {
	ID    string         `json:"id" yaml:"id"`
	Label string         `json:"label" yaml:"label"`
	Type  NodeType       `json:"type" yaml:"type"`
	Data  map[string]any `json:"data" yaml:"data"`
}

// GraphEdge links two nodes by ID. Label is nil for unlabeled edges.
type GraphEdge struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Label  *string `json:"label" yaml:"label"`
}

// Graph is a node/edge projection. It is rebuilt on every read and never stored.
type Graph struct {
	Nodes []GraphNode `json:"graph_nodes" yaml:"graph_nodes"`
	Edges []GraphEdge `json:"graph_edges" yaml:"graph_edges"`
}
