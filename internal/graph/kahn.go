package graph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycleDetected is matched by every CycleError.
var ErrCycleDetected = errors.New("cycle detected in ancestor graph")

// CycleInfo describes the objects Kahn's algorithm could not order.
type CycleInfo struct {
	TotalNodes        int
	ProcessedNodes    int
	UnprocessedNodes  []string // Insertion order
	CycleParticipants []string // Unprocessed nodes that lie on a cycle
	CyclePath         []string // First cycle found, closed on its start node
}

// Blocked returns the unprocessed nodes that only sit behind a cycle.
func (c *CycleInfo) Blocked() []string {
	onCycle := make(map[string]bool, len(c.CycleParticipants))
	for _, name := range c.CycleParticipants {
		onCycle[name] = true
	}
	var blocked []string
	for _, name := range c.UnprocessedNodes {
		if !onCycle[name] {
			blocked = append(blocked, name)
		}
	}
	return blocked
}

// CycleError is returned by ResolutionOrder when the ancestor graph of a
// runtime class model loops back on itself.
type CycleError struct {
	Info *CycleInfo
}

// Is reports whether target is ErrCycleDetected.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

func (e *CycleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d of %d objects could not be ordered",
		ErrCycleDetected, len(e.Info.UnprocessedNodes), e.Info.TotalNodes)
	if len(e.Info.CyclePath) > 0 {
		fmt.Fprintf(&b, "\nCycle path: %s", strings.Join(e.Info.CyclePath, " -> "))
	}
	if len(e.Info.CycleParticipants) > 0 {
		fmt.Fprintf(&b, "\nObjects in cycle: %s", strings.Join(e.Info.CycleParticipants, ", "))
	}
	if blocked := e.Info.Blocked(); len(blocked) > 0 {
		fmt.Fprintf(&b, "\nObjects blocked by cycle: %s", strings.Join(blocked, ", "))
	}
	return b.String()
}

// ResolutionOrder returns the order in which members are looked up: every
// derived object before its bases, ties broken by insertion order. This is
// Kahn's algorithm with edges running from derived to base, so the root
// comes first. Returns a CycleError if some objects cannot be ordered.
func (g *Graph) ResolutionOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.order))
	for _, name := range g.order {
		for _, base := range g.Children[name] {
			inDegree[base]++
		}
	}

	var ready []string
	for _, name := range g.order {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(g.order))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		for _, base := range g.Children[name] {
			inDegree[base]--
			if inDegree[base] == 0 {
				ready = append(ready, base)
			}
		}
	}

	if len(order) == len(g.order) {
		return order, nil
	}
	return nil, &CycleError{Info: g.cycleInfo(len(order), inDegree)}
}

// cycleInfo describes the nodes left with a positive in-degree after Kahn's
// algorithm stalled.
func (g *Graph) cycleInfo(processed int, inDegree map[string]int) *CycleInfo {
	info := &CycleInfo{TotalNodes: len(g.order), ProcessedNodes: processed}

	stuck := make(map[string]bool)
	for _, name := range g.order {
		if inDegree[name] > 0 {
			stuck[name] = true
			info.UnprocessedNodes = append(info.UnprocessedNodes, name)
		}
	}

	for _, name := range info.UnprocessedNodes {
		path := g.loopFrom(name, stuck)
		if path == nil {
			continue
		}
		info.CycleParticipants = append(info.CycleParticipants, name)
		if info.CyclePath == nil {
			info.CyclePath = path
		}
	}
	return info
}

// loopFrom returns a path from start back to start that only passes through
// allowed nodes, or nil when start is not on such a cycle.
func (g *Graph) loopFrom(start string, allowed map[string]bool) []string {
	seen := make(map[string]bool)

	var walk func(path []string) []string
	walk = func(path []string) []string {
		for _, base := range g.Children[path[len(path)-1]] {
			if base == start {
				return append(path, start)
			}
			if !allowed[base] || seen[base] {
				continue
			}
			seen[base] = true
			if found := walk(append(path, base)); found != nil {
				return found
			}
		}
		return nil
	}

	return walk([]string{start})
}
