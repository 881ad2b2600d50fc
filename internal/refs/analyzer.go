// Package refs implements the reference analyzer: a single DFS
// pass over a value graph that determines which aggregate nodes must
// receive a persistent identifier — because they are reachable along
// more than one path, or because they participate in a cycle.
package refs

import "github.com/link-foundation/link-notation-objects-codec/internal/value"

// analyzer carries the DFS state across one call to NeedsID: seen
// marks every aggregate visited at least once, onPath gives the
// current traversal-stack position of aggregates still being
// descended into (for O(1) cycle detection), and needsID accumulates
// the result. The shape mirrors the entered/exited visited map around
// recursion in internal/inference/graph_traversals.go's
// dfsProbabilisticReachability, extended with positional information
// since cycle detection here needs to know *where* on the path a
// revisited node sits.
type analyzer struct {
	seen    map[*value.Value]bool
	onPath  map[*value.Value]int
	path    []*value.Value
	needsID map[*value.Value]bool
}

// NeedsID returns the set of aggregate nodes, reachable from root,
// that must receive an identifier: any aggregate reached along two or
// more distinct paths, or any aggregate participating in a cycle (in
// which case every node on the cycle is flagged).
func NeedsID(root *value.Value) map[*value.Value]bool {
	a := &analyzer{
		seen:    make(map[*value.Value]bool),
		onPath:  make(map[*value.Value]int),
		needsID: make(map[*value.Value]bool),
	}
	a.visit(root)
	return a.needsID
}

func (a *analyzer) visit(v *value.Value) {
	if v == nil || !v.IsAggregate() {
		return
	}

	if a.seen[v] {
		a.needsID[v] = true
		if start, onPath := a.onPath[v]; onPath {
			// v is still on the active traversal stack: this is a
			// cycle. Every node from v's position to the top of the
			// stack is part of it and must be identified too.
			for _, cycleMember := range a.path[start:] {
				a.needsID[cycleMember] = true
			}
		}
		return
	}

	a.seen[v] = true
	a.onPath[v] = len(a.path)
	a.path = append(a.path, v)

	switch v.Kind() {
	case value.KindSeq:
		for _, item := range v.SeqItems() {
			a.visit(item)
		}
	case value.KindMap:
		for _, entry := range v.MapEntries() {
			a.visit(entry.Key)
			a.visit(entry.Value)
		}
	}

	a.path = a.path[:len(a.path)-1]
	delete(a.onPath, v)
}
