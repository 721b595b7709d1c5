package terrain

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrOutOfBounds is returned when reading or writing a position outside
// the terrain.
var ErrOutOfBounds = errors.New("terrain: position out of bounds")

// Terrain is a fixed-size 2D grid of tokens, the obstacles and paths an
// agent (or a blast) moves through.
//
// Cells can only be changed through Apply, which takes a whole change-set
// at once. There is deliberately no single-cell setter: algorithms that
// walk the terrain compute their full set of mutations first, then commit.
type Terrain struct {
	width  int
	height int
	cells  []Token // row-major, y*width+x

	start    Position
	goal     Position
	hasStart bool
	hasGoal  bool
}

// New creates a blank terrain of the given dimensions, every cell Empty.
func New(width, height int) *Terrain {
	cells := make([]Token, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return &Terrain{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Height returns the number of rows.
func (t *Terrain) Height() int { return t.height }

// Start returns the start position, if the loaded terrain had one.
func (t *Terrain) Start() (Position, bool) { return t.start, t.hasStart }

// Goal returns the goal position, if the loaded terrain had one.
func (t *Terrain) Goal() (Position, bool) { return t.goal, t.hasGoal }

// IsValid reports whether the position lies inside the terrain.
func (t *Terrain) IsValid(pos Position) bool {
	return pos.X >= 0 && pos.X < t.width && pos.Y >= 0 && pos.Y < t.height
}

func (t *Terrain) index(pos Position) (int, error) {
	if !t.IsValid(pos) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	return pos.Y*t.width + pos.X, nil
}

// At returns the token at the given position.
// Returns ErrOutOfBounds for positions outside the terrain.
func (t *Terrain) At(pos Position) (Token, error) {
	i, err := t.index(pos)
	if err != nil {
		return Empty, err
	}
	return t.cells[i], nil
}

// Apply overwrites every position in the change-set with its new token.
// The whole batch is rejected, with no cells written, if any key is
// outside the terrain.
func (t *Terrain) Apply(changes map[Position]Token) error {
	for pos := range changes {
		if !t.IsValid(pos) {
			return fmt.Errorf("%w: %v in change-set", ErrOutOfBounds, pos)
		}
	}
	for pos, tok := range changes {
		t.cells[pos.Y*t.width+pos.X] = tok
	}
	return nil
}

// All iterates over every cell in row-major order, starting at (0,0).
// A fresh range always restarts at the top-left.
func (t *Terrain) All() iter.Seq2[Position, Token] {
	return func(yield func(Position, Token) bool) {
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				if !yield(Position{X: x, Y: y}, t.cells[y*t.width+x]) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the terrain.
func (t *Terrain) Clone() *Terrain {
	cp := *t
	cp.cells = make([]Token, len(t.cells))
	copy(cp.cells, t.cells)
	return &cp
}

// String renders the terrain inside a double-line border.
func (t *Terrain) String() string {
	var b strings.Builder
	b.WriteRune(rune(borderDownAndRight))
	for x := 0; x < t.width; x++ {
		b.WriteRune(rune(borderHorizontal))
	}
	b.WriteRune(rune(borderDownAndLeft))
	b.WriteByte('\n')
	for y := 0; y < t.height; y++ {
		b.WriteRune(rune(borderVertical))
		for x := 0; x < t.width; x++ {
			b.WriteRune(rune(t.cells[y*t.width+x]))
		}
		b.WriteRune(rune(borderVertical))
		b.WriteByte('\n')
	}
	b.WriteRune(rune(borderUpAndRight))
	for x := 0; x < t.width; x++ {
		b.WriteRune(rune(borderHorizontal))
	}
	b.WriteRune(rune(borderUpAndLeft))
	b.WriteByte('\n')
	return b.String()
}
