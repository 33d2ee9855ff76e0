package display

// Glyph is a 5x5 bitmap. Row 0 is the top; bit 4 of each row byte is the
// leftmost column.
type Glyph [5]byte

// Lit reports whether the pixel at (row, col) is on. col 0 is leftmost.
func (g Glyph) Lit(row, col int) bool {
	return g[row]&(1<<(4-col)) != 0
}

// font maps runes to their bitmaps. Uppercase letters only; GlyphFor folds
// case before lookup.
var font = map[rune]Glyph{
	'A': {0x0E, 0x11, 0x1F, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x1E, 0x11, 0x1E},
	'C': {0x0F, 0x10, 0x10, 0x10, 0x0F},
	'D': {0x1E, 0x11, 0x11, 0x11, 0x1E},
	'E': {0x1F, 0x10, 0x1E, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x1E, 0x10, 0x10},
	'G': {0x0F, 0x10, 0x13, 0x11, 0x0F},
	'H': {0x11, 0x11, 0x1F, 0x11, 0x11},
	'I': {0x1F, 0x04, 0x04, 0x04, 0x1F},
	'J': {0x07, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x1C, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x1E, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x1E, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x0E, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x15, 0x1B, 0x11},
	'X': {0x11, 0x0A, 0x04, 0x0A, 0x11},
	'Y': {0x11, 0x0A, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x02, 0x04, 0x08, 0x1F},
}

// GlyphFor returns the bitmap for a rune, folding lowercase letters to
// uppercase. ok is false for runes the font does not cover.
func GlyphFor(r rune) (Glyph, bool) {
	if r >= 'a' && r <= 'z' {
		r = r - 'a' + 'A'
	}
	g, ok := font[r]
	return g, ok
}
