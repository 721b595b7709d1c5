package terrain

// Token is the symbolic marker occupying one terrain cell. Tokens are
// compared by value: two tokens with the same glyph are the same token.
type Token rune

// Tokens used in terrain files and console output.
const (
	Empty           Token = ' '
	Start           Token = '@'
	Goal            Token = 'X'
	Wall            Token = '#'
	Water           Token = '~'
	CurrentLocation Token = 'O'
	Visited         Token = '.'
	Path            Token = '*'
	Unknown         Token = '?'
	Bomb            Token = 'ό'

	Vertical     Token = '│' // │
	Horizontal   Token = '─' // ─
	DownAndRight Token = '┌' // ┌
	DownAndLeft  Token = '┐' // ┐
	UpAndRight   Token = '└' // └
	UpAndLeft    Token = '┘' // ┘
	GreyShade    Token = '░' // ░
	DarkShade    Token = '▒' // ▒

	borderHorizontal   Token = '═' // ═
	borderVertical     Token = '║' // ║
	borderUpAndRight   Token = '╚' // ╚
	borderUpAndLeft    Token = '╝' // ╝
	borderDownAndRight Token = '╔' // ╔
	borderDownAndLeft  Token = '╗' // ╗
)

func (t Token) String() string { return string(rune(t)) }

// Mask is a 4-bit value recording which of the four cardinal neighbor
// directions carry flame through a cell.
type Mask uint8

// Direction bit assignments within a Mask.
const (
	BitLeft  Mask = 1 << 0
	BitRight Mask = 1 << 1
	BitUp    Mask = 1 << 2
	BitDown  Mask = 1 << 3
)

// DirBit returns the mask bit for a cardinal direction, or 0 for DirNone.
func DirBit(d Direction) Mask {
	switch d {
	case DirLeft:
		return BitLeft
	case DirRight:
		return BitRight
	case DirUp:
		return BitUp
	case DirDown:
		return BitDown
	}
	return 0
}

// flameTokens maps a direction mask to the merged flame shape drawn at a
// cell. Indexed by Down|Up|Right|Left bits; mask 0 is the no-flame case.
var flameTokens = [16]Token{
	0b0000: Empty,
	0b0001: '╴', // left arm
	0b0010: '╶', // right arm
	0b0011: '─', // left + right
	0b0100: '╵', // up arm
	0b0101: '┘', // up + left
	0b0110: '└', // up + right
	0b0111: '┴', // up + left + right
	0b1000: '╷', // down arm
	0b1001: '┐', // down + left
	0b1010: '┌', // down + right
	0b1011: '┬', // down + left + right
	0b1100: '│', // up + down
	0b1101: '┤', // up + down + left
	0b1110: '├', // up + down + right
	0b1111: '┼', // full cross
}

// FlameToken returns the flame shape token for a direction mask.
// Total over 0..15; mask 0 yields Empty.
func FlameToken(m Mask) Token {
	return flameTokens[m&0b1111]
}

// flameSet holds the 15 non-empty flame glyphs for membership checks.
var flameSet = func() map[Token]bool {
	set := make(map[Token]bool, 15)
	for m := Mask(1); m < 16; m++ {
		set[flameTokens[m]] = true
	}
	return set
}()

// IsFlame reports whether the token is one of the 15 flame shapes.
func (t Token) IsFlame() bool {
	return flameSet[t]
}

// knownTokens is the closed set of glyphs accepted in terrain files.
var knownTokens = func() map[Token]bool {
	set := map[Token]bool{
		Empty: true, Start: true, Goal: true, Wall: true, Water: true,
		CurrentLocation: true, Visited: true, Path: true, Unknown: true,
		Bomb: true, GreyShade: true, DarkShade: true,
	}
	for m := Mask(1); m < 16; m++ {
		set[flameTokens[m]] = true
	}
	return set
}()

// IsKnown reports whether the glyph belongs to the terrain token set.
func (t Token) IsKnown() bool {
	return knownTokens[t]
}
