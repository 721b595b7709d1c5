package terrain

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when stepping with DirNone.
var ErrInvalidDirection = errors.New("terrain: invalid direction")

// Position represents a coordinate on the terrain.
// It is a comparable value type and can be used as a map key.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction represents one of the four cardinal directions, or no direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "^"
	case DirDown:
		return "v"
	case DirRight:
		return ">"
	case DirLeft:
		return "<"
	}
	return " "
}

// Step returns the unit-adjacent position in the given direction.
// Y decreases going up, following screen coordinates.
// Stepping with DirNone returns ErrInvalidDirection.
func (p Position) Step(d Direction) (Position, error) {
	switch d {
	case DirUp:
		return Position{X: p.X, Y: p.Y - 1}, nil
	case DirDown:
		return Position{X: p.X, Y: p.Y + 1}, nil
	case DirLeft:
		return Position{X: p.X - 1, Y: p.Y}, nil
	case DirRight:
		return Position{X: p.X + 1, Y: p.Y}, nil
	}
	return Position{}, ErrInvalidDirection
}

// DirectionTo returns the direction pointing from p toward other,
// checking the X axis first. Returns DirNone if the positions are equal.
func (p Position) DirectionTo(other Position) Direction {
	switch {
	case p.X > other.X:
		return DirLeft
	case p.X < other.X:
		return DirRight
	case p.Y > other.Y:
		return DirUp
	case p.Y < other.Y:
		return DirDown
	}
	return DirNone
}
