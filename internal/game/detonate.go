// Package game implements the detonation engine: given a terrain and a
// bomb position it computes the full set of cell changes an explosion
// produces, chain reactions included, without touching the terrain.
package game

import (
	"github.com/amalg/go-bombs/internal/terrain"
)

// BlastRadius is how many cells beyond the bomb a blast reaches in each
// cardinal direction.
const BlastRadius = 3

// blastDirs is the order directions are expanded from a bomb.
var blastDirs = []terrain.Direction{
	terrain.DirUp,
	terrain.DirDown,
	terrain.DirLeft,
	terrain.DirRight,
}

// changeSet accumulates the effects of one top-level detonation. Flame
// cells keep their direction mask directly; the display token is derived
// once at the end by a forward table lookup.
type changeSet struct {
	masks   map[terrain.Position]terrain.Mask
	cleared map[terrain.Position]bool // walls destroyed by the blast
}

func newChangeSet() *changeSet {
	return &changeSet{
		masks:   make(map[terrain.Position]terrain.Mask),
		cleared: make(map[terrain.Position]bool),
	}
}

// has reports whether the position is already part of the change-set,
// either as a flame cell or as a destroyed wall.
func (c *changeSet) has(pos terrain.Position) bool {
	if _, ok := c.masks[pos]; ok {
		return true
	}
	return c.cleared[pos]
}

// merge ORs direction bits into a cell's flame mask. Merging is
// idempotent and commutative, so overlapping blasts from several bombs
// end up with the union of all contributions.
func (c *changeSet) merge(pos terrain.Position, bits terrain.Mask) {
	c.masks[pos] |= bits
}

// Detonate computes the complete change-set produced by exploding the
// bomb at pos: flame shapes for every reached cell and Empty for every
// destroyed wall. Bombs caught in the blast detonate recursively into the
// same change-set.
//
// The terrain is only read, never written; the caller applies the result
// with Terrain.Apply. If pos is outside the terrain or does not hold a
// bomb, the result is an empty map.
func Detonate(pos terrain.Position, t *terrain.Terrain) map[terrain.Position]terrain.Token {
	cs := newChangeSet()

	if t.IsValid(pos) {
		if tok, _ := t.At(pos); tok == terrain.Bomb {
			cs.detonate(pos, t)
		}
	}

	changes := make(map[terrain.Position]terrain.Token, len(cs.masks)+len(cs.cleared))
	for p, m := range cs.masks {
		changes[p] = terrain.FlameToken(m)
	}
	for p := range cs.cleared {
		changes[p] = terrain.Empty
	}
	return changes
}

// detonate explodes the bomb at center: full cross at the bomb's own
// cell, then outward propagation in all four directions.
func (c *changeSet) detonate(center terrain.Position, t *terrain.Terrain) {
	c.merge(center, terrain.BitUp|terrain.BitDown|terrain.BitLeft|terrain.BitRight)

	for _, d := range blastDirs {
		next, err := center.Step(d)
		if err != nil {
			continue
		}
		if t.IsValid(next) {
			c.propagate(next, d, BlastRadius, t)
		}
	}
}

// propagate carries the blast one cell at a time in the travel direction.
// current is always inside the terrain.
func (c *changeSet) propagate(current terrain.Position, travel terrain.Direction, remaining int, t *terrain.Terrain) {
	if remaining == 0 {
		return
	}

	tok, _ := t.At(current)

	// A wall absorbs the blast: it is destroyed but gets no flame, and
	// nothing beyond it burns.
	if tok == terrain.Wall {
		c.cleared[current] = true
		return
	}

	// A fresh bomb chains: it runs its own full detonation and the
	// current line stops at its cell. A bomb already in the change-set
	// was detonated earlier in this cascade, so the blast passes over it
	// like any flamed cell.
	if tok == terrain.Bomb && !c.has(current) {
		c.detonate(current, t)
		return
	}

	// The tip of the blast points back toward the source; cells in
	// between carry the line through in both directions.
	bits := terrain.DirBit(travel.Opposite())
	if remaining > 1 {
		bits |= terrain.DirBit(travel)
	}
	c.merge(current, bits)

	next, err := current.Step(travel)
	if err != nil {
		return
	}
	if t.IsValid(next) {
		c.propagate(next, travel, remaining-1, t)
	}
}
