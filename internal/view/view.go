package view

import (
	"github.com/google/uuid"

	"github.com/modalkit/modalkit/internal/engine/buffer"
	"github.com/modalkit/modalkit/internal/engine/cursor"
	"github.com/modalkit/modalkit/internal/event"
)

// TopicSelectionChanged carries SelectionChanged payloads.
const TopicSelectionChanged event.Topic = "view.selection.changed"

// SelectionChanged is the payload of a native selection-changed event.
type SelectionChanged struct {
	View *View
	Old  buffer.Range
	New  buffer.Range
}

// View is one presentation of a buffer.
type View struct {
	id  string
	buf *buffer.Buffer
	bus *event.Bus

	selection  buffer.Range
	carets     *cursor.CaretSet
	blockCaret bool
	echo       string
}

// New creates a view onto the given buffer, publishing its native events
// on the given bus.
func New(buf *buffer.Buffer, bus *event.Bus) *View {
	return &View{
		id:         uuid.NewString(),
		buf:        buf,
		bus:        bus,
		carets:     cursor.NewCaretSetAt(0),
		blockCaret: true,
	}
}

// ID returns the view's unique identifier.
func (v *View) ID() string {
	return v.id
}

// Buffer returns the buffer this view presents.
func (v *View) Buffer() *buffer.Buffer {
	return v.buf
}

// Carets returns the view's caret set.
func (v *View) Carets() *cursor.CaretSet {
	return v.carets
}

// Selection returns the view's native selection range.
func (v *View) Selection() buffer.Range {
	return v.selection
}

// SetSelection sets the native selection and publishes a
// selection-changed event, exactly as a user-driven change would.
func (v *View) SetSelection(r buffer.Range) {
	old := v.selection
	v.selection = r
	v.carets.SetPrimary(cursor.FromRange(r))
	v.bus.Publish(TopicSelectionChanged, SelectionChanged{View: v, Old: old, New: r})
}

// SetSelectionSilently sets the native selection without publishing a
// selection-changed event. This is the primitive the sync layer uses to
// mirror selections into sibling views.
func (v *View) SetSelectionSilently(r buffer.Range) {
	v.selection = r
	v.carets.SetPrimary(cursor.FromRange(r))
}

// UsesBlockCaret reports whether the view renders a block-shaped caret.
func (v *View) UsesBlockCaret() bool {
	return v.blockCaret
}

// SetBlockCaret sets the caret shape flag.
func (v *View) SetBlockCaret(block bool) {
	v.blockCaret = block
}

// Echo returns the view's pending echo/output text.
func (v *View) Echo() string {
	return v.echo
}

// SetEcho sets the view's echo/output text.
func (v *View) SetEcho(text string) {
	v.echo = text
}

// ClearEcho clears the view's echo/output text.
func (v *View) ClearEcho() {
	v.echo = ""
}
