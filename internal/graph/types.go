// Package graph rebuilds the ancestor graph recorded by an ancestor climb
// and orders it with Kahn's algorithm.
package graph

// Node represents an inspected type or instance in the ancestor graph.
type Node struct {
	Name   string // Display name
	IsRoot bool   // True for the object the climb started from
}

// Edge represents a derived -> base relationship.
type Edge struct {
	From string // Derived name
	To   string // Base name
}

// Graph represents the ancestor structure discovered by one climb. Edges run
// from a derived object to its bases, so the root has in-degree 0 and the
// bases that declare no further bases are leaves.
type Graph struct {
	Nodes    map[string]*Node    // name -> node
	Children map[string][]string // name -> direct bases (outgoing edges)
	Parents  map[string][]string // name -> direct derived objects (incoming edges)
	Root     string              // Root name
	order    []string            // node names in insertion order
	edges    map[Edge]bool
}

// NewGraph creates a new empty graph with the specified root.
func NewGraph(root string) *Graph {
	g := &Graph{
		Nodes:    make(map[string]*Node),
		Children: make(map[string][]string),
		Parents:  make(map[string][]string),
		Root:     root,
		edges:    make(map[Edge]bool),
	}
	g.AddNode(root, &Node{IsRoot: true})
	return g
}

// AddNode adds a node to the graph. Adding a name twice keeps the first
// node. If node is nil, a new node with default values is created.
func (g *Graph) AddNode(name string, node *Node) {
	if g.HasNode(name) {
		return
	}
	if node == nil {
		node = &Node{}
	}
	node.Name = name
	g.Nodes[name] = node
	g.order = append(g.order, name)
}

// AddEdge adds a derived -> base relationship, creating missing nodes.
// It also maintains the reverse mapping for efficient lookups. Repeated
// edges are ignored and AddEdge reports whether the edge was new.
func (g *Graph) AddEdge(derived, base string) bool {
	edge := Edge{From: derived, To: base}
	if g.edges[edge] {
		return false
	}
	g.AddNode(derived, nil)
	g.AddNode(base, nil)
	g.edges[edge] = true

	// Add to children map (forward edges)
	g.Children[derived] = append(g.Children[derived], base)

	// Add to parents map (reverse edges)
	g.Parents[base] = append(g.Parents[base], derived)
	return true
}

// GetChildren returns the direct bases of name in declaration order.
func (g *Graph) GetChildren(name string) []string {
	return g.Children[name]
}

// GetNode returns the node for a given name, or nil if not found.
func (g *Graph) GetNode(name string) *Node {
	return g.Nodes[name]
}

// HasNode returns true if the graph contains a node with the given name.
func (g *Graph) HasNode(name string) bool {
	_, exists := g.Nodes[name]
	return exists
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AllNodes returns all node names in the order they were added.
func (g *Graph) AllNodes() []string {
	return append([]string(nil), g.order...)
}

// AllEdges returns all edges grouped by derived node in insertion order.
func (g *Graph) AllEdges() []Edge {
	var edges []Edge
	for _, name := range g.order {
		for _, base := range g.Children[name] {
			edges = append(edges, Edge{From: name, To: base})
		}
	}
	return edges
}

// LeafNodes returns all nodes without bases, in insertion order.
func (g *Graph) LeafNodes() []string {
	var leaves []string
	for _, name := range g.order {
		if len(g.Children[name]) == 0 {
			leaves = append(leaves, name)
		}
	}
	return leaves
}
