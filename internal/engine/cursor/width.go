package cursor

import (
	"strings"

	"github.com/rivo/uniseg"
)

// VisualColumn returns the display column of the given byte column within
// a line, expanding tabs to the next tab stop and measuring everything
// else by grapheme-cluster display width.
func VisualColumn(line string, byteCol, tabWidth int) int {
	if byteCol < 0 {
		byteCol = 0
	}
	if byteCol > len(line) {
		byteCol = len(line)
	}
	if tabWidth < 1 {
		tabWidth = 1
	}

	prefix := line[:byteCol]
	col := 0
	start := 0
	for {
		i := strings.IndexByte(prefix[start:], '\t')
		if i < 0 {
			break
		}
		col += uniseg.StringWidth(prefix[start : start+i])
		col += tabWidth - col%tabWidth
		start += i + 1
	}
	return col + uniseg.StringWidth(prefix[start:])
}

// PrevGrapheme returns the byte column of the start of the grapheme
// cluster ending at byteCol, so callers can step a caret one display
// column left without landing inside a multi-byte rune or splitting a
// combining sequence. Returns 0 at or before the first cluster.
func PrevGrapheme(line string, byteCol int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	if byteCol <= 0 {
		return 0
	}
	start := 0
	g := uniseg.NewGraphemes(line[:byteCol])
	for g.Next() {
		start, _ = g.Positions()
	}
	return start
}
