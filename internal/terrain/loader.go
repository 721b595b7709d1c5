package terrain

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Terrain file format: the first line is the width, the second the height,
// followed by height lines of width single-glyph tokens.

// Load reads a terrain file. Start and goal markers are recorded when
// present but not required.
func Load(path string) (*Terrain, error) {
	return load(path, false)
}

// LoadRequired reads a terrain file and fails unless it contains both a
// start and a goal marker.
func LoadRequired(path string) (*Terrain, error) {
	return load(path, true)
}

func load(path string, startGoalRequired bool) (*Terrain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	width, err := readDimension(sc, "width")
	if err != nil {
		return nil, fmt.Errorf("terrain %s: %w", path, err)
	}
	height, err := readDimension(sc, "height")
	if err != nil {
		return nil, fmt.Errorf("terrain %s: %w", path, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terrain %s: invalid dimensions %dx%d", path, width, height)
	}

	t := New(width, height)
	for y := 0; y < height && sc.Scan(); y++ {
		// Short lines are padded with Empty; excess glyphs are rejected.
		line := strings.TrimRight(sc.Text(), "\r")
		x := 0
		for _, c := range line {
			if x >= width {
				return nil, fmt.Errorf("terrain %s: row %d longer than width %d", path, y, width)
			}
			tok := Token(c)
			if !tok.IsKnown() {
				return nil, fmt.Errorf("terrain %s: unknown token %q at (%d, %d)", path, c, x, y)
			}
			t.cells[y*width+x] = tok
			switch tok {
			case Start:
				t.start = Position{X: x, Y: y}
				t.hasStart = true
			case Goal:
				t.goal = Position{X: x, Y: y}
				t.hasGoal = true
			}
			x++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain %s: %w", path, err)
	}

	if startGoalRequired && !(t.hasStart && t.hasGoal) {
		return nil, fmt.Errorf("terrain %s: goal or start missing", path)
	}
	return t, nil
}

func readDimension(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("missing %s line", name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("bad %s line: %w", name, err)
	}
	return n, nil
}

// Save writes the terrain in the same format Load reads.
func Save(t *Terrain, path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%d\n", t.width, t.height)
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			b.WriteRune(rune(t.cells[y*t.width+x]))
		}
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	return nil
}
