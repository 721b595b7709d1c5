package terrain

import "testing"

func TestFlameTokenBijective(t *testing.T) {
	if FlameToken(0) != Empty {
		t.Errorf("FlameToken(0) = %q, want Empty", FlameToken(0))
	}

	seen := make(map[Token]Mask)
	for m := Mask(0); m < 16; m++ {
		tok := FlameToken(m)
		if prev, dup := seen[tok]; dup {
			t.Errorf("masks %04b and %04b share token %q", prev, m, tok)
		}
		seen[tok] = m
	}
	if len(seen) != 16 {
		t.Fatalf("expected 16 distinct tokens, got %d", len(seen))
	}
}

func TestFlameTokenShapes(t *testing.T) {
	cases := []struct {
		mask Mask
		want Token
	}{
		{BitLeft | BitRight, '─'},
		{BitUp | BitDown, '│'},
		{BitUp | BitRight, '└'},
		{BitUp | BitDown | BitLeft | BitRight, '┼'},
		{BitDown, '╷'},
	}
	for _, c := range cases {
		if got := FlameToken(c.mask); got != c.want {
			t.Errorf("FlameToken(%04b) = %q, want %q", c.mask, got, c.want)
		}
	}
}

func TestIsFlame(t *testing.T) {
	for m := Mask(1); m < 16; m++ {
		if !FlameToken(m).IsFlame() {
			t.Errorf("FlameToken(%04b) should be a flame", m)
		}
	}

	for _, tok := range []Token{Empty, Wall, Bomb, Start, Goal, Water} {
		if tok.IsFlame() {
			t.Errorf("%q should not be a flame", tok)
		}
	}
}

func TestDirBit(t *testing.T) {
	bits := map[Direction]Mask{
		DirLeft:  BitLeft,
		DirRight: BitRight,
		DirUp:    BitUp,
		DirDown:  BitDown,
	}

	var union Mask
	for d, want := range bits {
		got := DirBit(d)
		if got != want {
			t.Errorf("DirBit(%v) = %04b, want %04b", d, got, want)
		}
		if union&got != 0 {
			t.Errorf("DirBit(%v) overlaps another direction", d)
		}
		union |= got
	}
	if union != 0b1111 {
		t.Errorf("direction bits should cover the 4-bit mask, got %04b", union)
	}
	if DirBit(DirNone) != 0 {
		t.Errorf("DirBit(DirNone) = %04b, want 0", DirBit(DirNone))
	}
}
