// Package samples holds small object graphs that exercise the walkers:
// an embedding lattice, a diamond, a self-referencing ring and a runtime
// class model with a metaclass fixed point and cyclic bases.
package samples

import "strconv"

// Embedding lattice. J reaches D both directly and through G.
type (
	A struct{}
	B struct{ A }
	C struct{ B }
	D struct{}
	E struct{ D }
	F struct{ E }
	G struct {
		C
		F
	}
	H struct{}
	J struct {
		G
		H
		D
	}
)

// Super is a base with state and a pointer method.
type Super struct {
	ClassLevelVariable string
	Data               string
}

// NewSuper returns a Super with its defaults set.
func NewSuper() *Super {
	return &Super{ClassLevelVariable: "Who can see me?"}
}

// Hello sets Data.
func (s *Super) Hello() {
	s.Data = "More"
}

// Sub extends Super.
type Sub struct {
	Super
	Data2 string
}

// NewSub returns a Sub with the Super defaults set.
func NewSub() *Sub {
	return &Sub{Super: *NewSuper()}
}

// Hola sets Data2.
func (s *Sub) Hola() {
	s.Data2 = "Cowbell"
}

// Diamond inheritance: Diamond reaches DiamondBase through both sides.
type (
	DiamondBase struct {
		Root string
	}
	DiamondLeft struct {
		DiamondBase
		Left string
	}
	DiamondRight struct {
		DiamondBase
		Right string
	}
	Diamond struct {
		DiamondLeft
		DiamondRight
	}
)

// Node is a link in a singly linked ring.
type Node struct {
	Label string
	Next  *Node
}

// NewRing builds a ring of n nodes labelled node-0 through node-(n-1) whose last
// node points back at the first. n < 1 is treated as 1.
func NewRing(n int) *Node {
	if n < 1 {
		n = 1
	}
	head := &Node{Label: "node-0"}
	cur := head
	for i := 1; i < n; i++ {
		cur.Next = &Node{Label: nodeLabel(i)}
		cur = cur.Next
	}
	cur.Next = head
	return head
}

func nodeLabel(i int) string {
	return "node-" + strconv.Itoa(i)
}
