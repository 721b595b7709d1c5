package terrain

import "fmt"

// pathTokens picks the box-drawing glyph for a path cell from the
// direction the path arrived from (as its opposite) and the direction it
// leaves in. Rows and columns are indexed None, Up, Right, Down, Left.
var pathTokens = [5][5]Token{
	{Empty, Empty, Empty, Empty, Empty},
	{Empty, Empty, UpAndRight, Vertical, UpAndLeft},
	{Empty, UpAndRight, Empty, DownAndRight, Horizontal},
	{Empty, Vertical, DownAndRight, Empty, DownAndLeft},
	{Empty, UpAndLeft, Horizontal, DownAndLeft, Empty},
}

// ApplyPath returns a copy of the terrain with the path drawn on it,
// following the directions from the start marker. Steps that leave the
// terrain or run into a wall are skipped. The final cell is marked with
// CurrentLocation. With simpleTokens the path is drawn with plain Path
// marks instead of box-drawing lines.
func (t *Terrain) ApplyPath(path []Direction, simpleTokens bool) (*Terrain, error) {
	if !t.hasStart {
		return nil, fmt.Errorf("terrain: no start marker to draw a path from")
	}

	cp := t.Clone()
	previous := DirNone
	current := t.start

	for _, to := range path {
		next, err := current.Step(to)
		if err != nil {
			return nil, err
		}
		if !t.IsValid(next) {
			continue
		}
		if tok, _ := t.At(next); tok == Wall {
			continue
		}

		if current != t.start && (!t.hasGoal || current != t.goal) {
			if simpleTokens {
				cp.cells[current.Y*cp.width+current.X] = Path
			} else {
				cp.cells[current.Y*cp.width+current.X] = pathTokens[previous.Opposite()][to]
			}
		}

		previous = to
		current = next
	}

	if current != t.start && (!t.hasGoal || current != t.goal) {
		cp.cells[current.Y*cp.width+current.X] = CurrentLocation
	}
	return cp, nil
}

// ApplyVisited returns a copy of the terrain with the given positions
// marked by tok. Only empty cells are marked; walls and positions outside
// the terrain are skipped.
func (t *Terrain) ApplyVisited(positions []Position, tok Token) *Terrain {
	cp := t.Clone()
	for _, pos := range positions {
		if !t.IsValid(pos) {
			continue
		}
		i := pos.Y * t.width + pos.X
		if t.cells[i] == Wall {
			continue
		}
		if cp.cells[i] == Empty {
			cp.cells[i] = tok
		}
	}
	return cp
}
