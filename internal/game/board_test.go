package game

import (
	"math/rand"
	"testing"

	"github.com/amalg/go-bombs/internal/terrain"
)

func TestGenerateBoard(t *testing.T) {
	const w, h = 15, 13
	tr := GenerateBoard(w, h, 0.4, rand.New(rand.NewSource(1)))

	if tr.Width() != w || tr.Height() != h {
		t.Fatalf("expected %dx%d, got %dx%d", w, h, tr.Width(), tr.Height())
	}

	// Border walls
	for x := 0; x < w; x++ {
		if tok, _ := tr.At(pos(x, 0)); tok != terrain.Wall {
			t.Errorf("top border at (%d,0) should be Wall", x)
		}
		if tok, _ := tr.At(pos(x, h-1)); tok != terrain.Wall {
			t.Errorf("bottom border at (%d,%d) should be Wall", x, h-1)
		}
	}
	for y := 0; y < h; y++ {
		if tok, _ := tr.At(pos(0, y)); tok != terrain.Wall {
			t.Errorf("left border at (0,%d) should be Wall", y)
		}
		if tok, _ := tr.At(pos(w-1, y)); tok != terrain.Wall {
			t.Errorf("right border at (%d,%d) should be Wall", w-1, y)
		}
	}

	// Pillar pattern at interior even/even positions
	for y := 2; y < h-1; y += 2 {
		for x := 2; x < w-1; x += 2 {
			if tok, _ := tr.At(pos(x, y)); tok != terrain.Wall {
				t.Errorf("pillar at (%d,%d) should be Wall, got %q", x, y, tok)
			}
		}
	}

	// Corners stay clear
	for _, p := range []terrain.Position{
		pos(1, 1), pos(w-2, 1), pos(1, h-2), pos(w-2, h-2),
	} {
		if tok, _ := tr.At(p); tok != terrain.Empty {
			t.Errorf("corner %v should be Empty, got %q", p, tok)
		}
	}
}

func TestGenerateBoardZeroDensity(t *testing.T) {
	const w, h = 11, 9
	tr := GenerateBoard(w, h, 0, rand.New(rand.NewSource(1)))

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if x%2 == 0 && y%2 == 0 {
				continue
			}
			if tok, _ := tr.At(pos(x, y)); tok != terrain.Empty {
				t.Errorf("cell (%d,%d) should be Empty at density 0, got %q", x, y, tok)
			}
		}
	}
}

func TestGeneratedBoardDetonates(t *testing.T) {
	tr := GenerateBoard(15, 13, 0.4, rand.New(rand.NewSource(7)))

	corner := pos(1, 1)
	if err := tr.Apply(map[terrain.Position]terrain.Token{corner: terrain.Bomb}); err != nil {
		t.Fatalf("placing bomb: %v", err)
	}

	changes := Detonate(corner, tr)
	if len(changes) == 0 {
		t.Fatal("expected some changes from a corner bomb")
	}
	if got := changes[corner]; got != '┼' {
		t.Errorf("bomb cell = %q, want ┼", got)
	}
	if err := tr.Apply(changes); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
}
