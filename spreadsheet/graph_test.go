package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vogtb/gridsheet/position"
)

func TestGraphAddEdgeCreatesReferrerEntry(t *testing.T) {
	g := newGraph()
	a := position.Position{Row: 0, Col: 0}
	b := position.Position{Row: 1, Col: 0}
	g.AddEdge(a, b)
	assert.ElementsMatch(t, []position.Position{a}, g.ReferrersOf(b))
}

func TestGraphRemoveEdgeDropsEmptyEntry(t *testing.T) {
	g := newGraph()
	a := position.Position{Row: 0, Col: 0}
	b := position.Position{Row: 1, Col: 0}
	g.AddEdge(a, b)
	g.RemoveEdge(a, b)
	assert.Empty(t, g.ReferrersOf(b))
	_, present := g.referrers[b]
	assert.False(t, present, "empty referrer sets must not linger as map entries")
}

func TestGraphMultipleReferrers(t *testing.T) {
	g := newGraph()
	a := position.Position{Row: 0, Col: 0}
	b := position.Position{Row: 1, Col: 0}
	c := position.Position{Row: 2, Col: 0}
	g.AddEdge(a, c)
	g.AddEdge(b, c)
	assert.ElementsMatch(t, []position.Position{a, b}, g.ReferrersOf(c))

	g.RemoveEdge(a, c)
	assert.ElementsMatch(t, []position.Position{b}, g.ReferrersOf(c))
}

func TestGraphReferrersOfAbsentIsEmpty(t *testing.T) {
	g := newGraph()
	assert.Empty(t, g.ReferrersOf(position.Position{Row: 5, Col: 5}))
}
