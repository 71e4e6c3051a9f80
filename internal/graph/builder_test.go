package graph

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dbsmedya/goinspect/internal/history"
)

func diamondEdges() []history.EdgeRecord {
	return []history.EdgeRecord{
		{Index: 0, Parent: "Diamond", Children: []string{"DiamondLeft", "DiamondRight"}},
		{Index: 1, Parent: "DiamondLeft", Children: []string{"DiamondBase"}},
		{Index: 2, Parent: "DiamondBase"},
		{Index: 3, Parent: "DiamondRight", Children: []string{"DiamondBase"}},
		{Index: 4, Parent: "DiamondBase"},
	}
}

func TestFromEdges_Diamond(t *testing.T) {
	g, err := FromEdges(diamondEdges())
	if err != nil {
		t.Fatalf("FromEdges() failed: %v", err)
	}

	if g.Root != "Diamond" {
		t.Errorf("Expected root Diamond, got %s", g.Root)
	}
	if g.NodeCount() != 4 {
		t.Errorf("Expected 4 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 4 {
		t.Errorf("Expected 4 edges, got %d", g.EdgeCount())
	}
	if !reflect.DeepEqual(g.Parents["DiamondBase"], []string{"DiamondLeft", "DiamondRight"}) {
		t.Errorf("Unexpected parents of DiamondBase: %v", g.Parents["DiamondBase"])
	}
	if !reflect.DeepEqual(g.AllNodes(), []string{"Diamond", "DiamondLeft", "DiamondRight", "DiamondBase"}) {
		t.Errorf("Unexpected node order: %v", g.AllNodes())
	}
}

func TestFromEdges_RepeatedEdgesCollapse(t *testing.T) {
	edges := append(diamondEdges(), diamondEdges()[0])

	g, err := FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges() failed: %v", err)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("Expected 4 edges, got %d", g.EdgeCount())
	}
}

func TestFromEdges_Errors(t *testing.T) {
	tests := []struct {
		name    string
		edges   []history.EdgeRecord
		wantErr string
	}{
		{
			name:    "empty",
			edges:   nil,
			wantErr: "edge list is empty",
		},
		{
			name:    "unnamed parent",
			edges:   []history.EdgeRecord{{Index: 0, Parent: "A"}, {Index: 1, Parent: ""}},
			wantErr: "edge 1 has no parent name",
		},
		{
			name:    "unnamed base",
			edges:   []history.EdgeRecord{{Index: 0, Parent: "A", Children: []string{""}}},
			wantErr: "unnamed base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEdges(tt.edges)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFromEdges_CycleIsBuilt(t *testing.T) {
	edges := []history.EdgeRecord{
		{Index: 0, Parent: "First", Children: []string{"Third"}},
		{Index: 1, Parent: "Third", Children: []string{"Second"}},
		{Index: 2, Parent: "Second", Children: []string{"First"}},
	}

	g, err := NewBuilder(edges).Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if _, err := g.ResolutionOrder(); !errors.Is(err, ErrCycleDetected) {
		t.Errorf("Expected cycle to be detected, got %v", err)
	}
}
