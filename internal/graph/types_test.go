package graph

import (
	"reflect"
	"testing"
)

func TestNewGraph(t *testing.T) {
	g := NewGraph("Diamond")

	if g.Root != "Diamond" {
		t.Errorf("Expected root Diamond, got %s", g.Root)
	}
	if !g.HasNode("Diamond") {
		t.Fatal("Expected root node to exist")
	}
	if !g.GetNode("Diamond").IsRoot {
		t.Error("Expected root node to be marked as root")
	}
	if g.NodeCount() != 1 {
		t.Errorf("Expected 1 node, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges, got %d", g.EdgeCount())
	}
}

func TestAddEdge_CreatesNodesAndReverseMapping(t *testing.T) {
	g := NewGraph("Sub")

	if !g.AddEdge("Sub", "Super") {
		t.Error("Expected first AddEdge to report a new edge")
	}

	if !g.HasNode("Super") {
		t.Error("Expected base node to be created")
	}
	if g.GetNode("Super").IsRoot {
		t.Error("Base node should not be root")
	}
	if !reflect.DeepEqual(g.GetChildren("Sub"), []string{"Super"}) {
		t.Errorf("Unexpected children: %v", g.GetChildren("Sub"))
	}
	if !reflect.DeepEqual(g.Parents["Super"], []string{"Sub"}) {
		t.Errorf("Unexpected parents: %v", g.Parents["Super"])
	}
}

func TestAddEdge_IgnoresDuplicates(t *testing.T) {
	g := NewGraph("Left")
	g.AddEdge("Left", "Base")

	if g.AddEdge("Left", "Base") {
		t.Error("Expected duplicate AddEdge to report an existing edge")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.EdgeCount())
	}
	if len(g.Parents["Base"]) != 1 {
		t.Errorf("Expected in-degree 1, got %d", len(g.Parents["Base"]))
	}
	if len(g.GetChildren("Left")) != 1 {
		t.Errorf("Expected out-degree 1, got %d", len(g.GetChildren("Left")))
	}
}

func TestAddNode_KeepsFirst(t *testing.T) {
	g := NewGraph("Root")
	g.AddNode("Root", &Node{IsRoot: false})

	if !g.GetNode("Root").IsRoot {
		t.Error("Expected the original root node to be kept")
	}
	if g.NodeCount() != 1 {
		t.Errorf("Expected 1 node, got %d", g.NodeCount())
	}
}

func TestInsertionOrder(t *testing.T) {
	g := NewGraph("J")
	g.AddEdge("J", "G")
	g.AddEdge("J", "H")
	g.AddEdge("J", "D")
	g.AddEdge("G", "C")

	if want := []string{"J", "G", "H", "D", "C"}; !reflect.DeepEqual(g.AllNodes(), want) {
		t.Errorf("AllNodes() = %v, want %v", g.AllNodes(), want)
	}

	wantEdges := []Edge{
		{From: "J", To: "G"},
		{From: "J", To: "H"},
		{From: "J", To: "D"},
		{From: "G", To: "C"},
	}
	if !reflect.DeepEqual(g.AllEdges(), wantEdges) {
		t.Errorf("AllEdges() = %v, want %v", g.AllEdges(), wantEdges)
	}

	if want := []string{"H", "D", "C"}; !reflect.DeepEqual(g.LeafNodes(), want) {
		t.Errorf("LeafNodes() = %v, want %v", g.LeafNodes(), want)
	}
}

func TestGetNode_Missing(t *testing.T) {
	g := NewGraph("Root")
	if g.GetNode("missing") != nil {
		t.Error("Expected nil for missing node")
	}
	if g.GetChildren("missing") != nil {
		t.Error("Expected no children for missing node")
	}
}
