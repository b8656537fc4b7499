package spreadsheet

import "github.com/vogtb/gridsheet/position"

// graph is the reverse-adjacency dependency graph: for each referenced
// position, the set of positions whose formula currently references it.
// An entry exists in the map iff its referrer set is non-empty.
type graph struct {
	referrers map[position.Position]map[position.Position]struct{}
}

func newGraph() *graph {
	return &graph{referrers: make(map[position.Position]map[position.Position]struct{})}
}

// AddEdge records that referrer's formula references dst.
func (g *graph) AddEdge(referrer, dst position.Position) {
	set, ok := g.referrers[dst]
	if !ok {
		set = make(map[position.Position]struct{})
		g.referrers[dst] = set
	}
	set[referrer] = struct{}{}
}

// RemoveEdge removes the referrer -> dst edge, dropping dst's entry
// entirely once its referrer set empties.
func (g *graph) RemoveEdge(referrer, dst position.Position) {
	set, ok := g.referrers[dst]
	if !ok {
		return
	}
	delete(set, referrer)
	if len(set) == 0 {
		delete(g.referrers, dst)
	}
}

// ReferrersOf returns the positions currently referencing dst; empty when
// dst has no incoming edges.
func (g *graph) ReferrersOf(dst position.Position) []position.Position {
	set, ok := g.referrers[dst]
	if !ok {
		return nil
	}
	out := make([]position.Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}
