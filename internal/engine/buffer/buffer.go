package buffer

import "strings"

// Buffer holds line-indexed text addressed by byte offsets.
// Lines are stored without their trailing newline; offsets account for a
// single '\n' between lines. All methods assume the UI-affine execution
// context that delivers native editor events.
type Buffer struct {
	lines    []string
	tabWidth int

	// internalEvents counts open internal-event windows. While positive,
	// the host is replaying batched document events and cross-view
	// selection propagation is skipped.
	internalEvents int
}

// New creates an empty buffer with a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}, tabWidth: 4}
}

// FromString creates a buffer with the given content.
// Line endings are normalized to '\n'.
func FromString(s string) *Buffer {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return &Buffer{lines: strings.Split(s, "\n"), tabWidth: 4}
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Len returns the total content length in bytes.
func (b *Buffer) Len() ByteOffset {
	var n ByteOffset
	for i, line := range b.lines {
		if i > 0 {
			n++ // newline
		}
		n += ByteOffset(len(line))
	}
	return n
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() uint32 {
	return uint32(len(b.lines))
}

// LineText returns the text of the given line, without its newline.
// Returns the empty string for out-of-range lines.
func (b *Buffer) LineText(line uint32) string {
	if line >= uint32(len(b.lines)) {
		return ""
	}
	return b.lines[line]
}

// LineStartOffset returns the offset of the first byte of the given line.
// Out-of-range lines clamp to the buffer length.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	if line >= uint32(len(b.lines)) {
		return b.Len()
	}
	var off ByteOffset
	for i := uint32(0); i < line; i++ {
		off += ByteOffset(len(b.lines[i])) + 1
	}
	return off
}

// LineEndOffset returns the offset just past the last byte of the given
// line, excluding the newline.
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	if line >= uint32(len(b.lines)) {
		return b.Len()
	}
	return b.LineStartOffset(line) + ByteOffset(len(b.lines[line]))
}

// OffsetToPoint converts a byte offset to a line/column point.
// Offsets past the end clamp to the last position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	var start ByteOffset
	for i, line := range b.lines {
		end := start + ByteOffset(len(line))
		if offset <= end {
			return Point{Line: uint32(i), Column: uint32(offset - start)}
		}
		start = end + 1
	}
	last := uint32(len(b.lines) - 1)
	return Point{Line: last, Column: uint32(len(b.lines[last]))}
}

// PointToOffset converts a line/column point to a byte offset.
// Columns past a line's end clamp to the line end.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	if p.Line >= uint32(len(b.lines)) {
		return b.Len()
	}
	col := ByteOffset(p.Column)
	if max := ByteOffset(len(b.lines[p.Line])); col > max {
		col = max
	}
	return b.LineStartOffset(p.Line) + col
}

// ClampOffset clamps an offset to the valid range [0, Len()].
func (b *Buffer) ClampOffset(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if l := b.Len(); offset > l {
		return l
	}
	return offset
}

// TabWidth returns the buffer's tab display width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// SetTabWidth sets the tab display width. Widths below 1 are ignored.
func (b *Buffer) SetTabWidth(width int) {
	if width >= 1 {
		b.tabWidth = width
	}
}

// BeginInternalEvents opens an internal-event window.
// Windows nest; each Begin must be matched by an End.
func (b *Buffer) BeginInternalEvents() {
	b.internalEvents++
}

// EndInternalEvents closes an internal-event window.
// Closing an already-closed window is ignored.
func (b *Buffer) EndInternalEvents() {
	if b.internalEvents > 0 {
		b.internalEvents--
	}
}

// IsProcessingInternalEvents reports whether the host is replaying
// batched document events for this buffer.
func (b *Buffer) IsProcessingInternalEvents() bool {
	return b.internalEvents > 0
}
