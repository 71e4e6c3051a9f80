package graph

import (
	"fmt"

	"github.com/dbsmedya/goinspect/internal/history"
)

// Builder constructs an ancestor graph from the edge list of a climb.
type Builder struct {
	edges []history.EdgeRecord
}

// NewBuilder creates a new graph builder for the given edge list.
func NewBuilder(edges []history.EdgeRecord) *Builder {
	return &Builder{edges: edges}
}

// Build constructs the graph. The parent of the first edge becomes the root.
// Unlike a declared type hierarchy, a runtime class model can contain
// cycles, so Build does not reject them; ResolutionOrder reports them.
func (b *Builder) Build() (*Graph, error) {
	if len(b.edges) == 0 {
		return nil, fmt.Errorf("edge list is empty")
	}

	g := NewGraph(b.edges[0].Parent)
	for _, e := range b.edges {
		if e.Parent == "" {
			return nil, fmt.Errorf("edge %d has no parent name", e.Index)
		}
		g.AddNode(e.Parent, nil)
		for _, child := range e.Children {
			if child == "" {
				return nil, fmt.Errorf("edge %d of %q has an unnamed base", e.Index, e.Parent)
			}
			g.AddEdge(e.Parent, child)
		}
	}

	return g, nil
}

// FromEdges is a convenience function that builds a graph directly from an
// edge list.
func FromEdges(edges []history.EdgeRecord) (*Graph, error) {
	return NewBuilder(edges).Build()
}
