package game

import (
	"math/rand"

	"github.com/amalg/go-bombs/internal/terrain"
)

// GenerateBoard builds a classic arena layout on a fresh terrain.
//
// Layout rules:
//   - Border is all wall
//   - Wall at every interior position where both X and Y are even
//   - Random wall fill at the given density
//   - The four interior corners (and their adjacent tiles) are kept clear
func GenerateBoard(width, height int, density float64, rng *rand.Rand) *terrain.Terrain {
	t := terrain.New(width, height)
	changes := make(map[terrain.Position]terrain.Token)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x == 0 || y == 0 || x == width-1 || y == height-1:
				changes[terrain.Position{X: x, Y: y}] = terrain.Wall
			case x%2 == 0 && y%2 == 0:
				// Interior pillar pattern
				changes[terrain.Position{X: x, Y: y}] = terrain.Wall
			}
		}
	}

	safe := clearCorners(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			pos := terrain.Position{X: x, Y: y}
			if _, walled := changes[pos]; walled {
				continue
			}
			if safe[pos] {
				continue
			}
			if rng.Float64() < density {
				changes[pos] = terrain.Wall
			}
		}
	}

	// Every position is in range, Apply cannot fail here.
	_ = t.Apply(changes)
	return t
}

// clearCorners returns the positions that must stay open: each interior
// corner plus its neighbors, so a bomb placed there has room to blast.
func clearCorners(width, height int) map[terrain.Position]bool {
	corners := []terrain.Position{
		{X: 1, Y: 1},
		{X: width - 2, Y: 1},
		{X: 1, Y: height - 2},
		{X: width - 2, Y: height - 2},
	}

	safe := make(map[terrain.Position]bool)
	for _, c := range corners {
		safe[c] = true
		safe[terrain.Position{X: c.X + 1, Y: c.Y}] = true
		safe[terrain.Position{X: c.X - 1, Y: c.Y}] = true
		safe[terrain.Position{X: c.X, Y: c.Y + 1}] = true
		safe[terrain.Position{X: c.X, Y: c.Y - 1}] = true
	}
	return safe
}
