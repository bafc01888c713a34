package mouse

import (
	"github.com/rs/zerolog"

	"github.com/modalkit/modalkit/internal/engine/buffer"
	"github.com/modalkit/modalkit/internal/engine/cursor"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/suppress"
)

// GestureHandler reacts to native mouse events on behalf of the shim.
//
// Drag gestures form a two-state machine {Idle, Dragging}. The first
// drag event of a gesture acquires the selection suppression guard and
// forces a block caret; the release event feeds the final selection into
// the modal engine and releases the guard, guaranteed even if the engine
// call fails. Native drag events repeat continuously, so the isDragging
// latch keeps the guard depth at exactly one per gesture.
type GestureHandler struct {
	engine *mode.Engine
	guard  *suppress.Guard
	config Config
	log    zerolog.Logger

	// Drag gesture state, reset on release.
	isDragging    bool
	wasBlockCaret bool
}

// NewGestureHandler creates a gesture handler bound to the modal engine
// and the selection suppression guard.
func NewGestureHandler(engine *mode.Engine, guard *suppress.Guard, config Config, log zerolog.Logger) *GestureHandler {
	return &GestureHandler{
		engine: engine,
		guard:  guard,
		config: config,
		log:    log,
	}
}

// IsDragging returns true while a drag gesture is in progress.
func (h *GestureHandler) IsDragging() bool {
	return h.isDragging
}

// OnMouseDragged handles drag motion with a button held.
// Only the first event of a gesture has any effect.
func (h *GestureHandler) OnMouseDragged(ev Event) {
	if !h.engine.Enabled() || !h.config.EnableDragSelection {
		return
	}
	if ev.Button != ButtonNone && ev.Button != ButtonLeft {
		return
	}
	if h.isDragging {
		return
	}

	h.isDragging = true
	h.wasBlockCaret = ev.View.UsesBlockCaret()
	h.guard.Lock()
	h.engine.ForceBlockCaret(ev.View)
}

// OnMouseReleased ends a drag gesture. The suppression guard is released
// on every exit path; the final selection reaches the modal engine
// exactly once. A release with no drag in progress is ignored.
func (h *GestureHandler) OnMouseReleased(ev Event) {
	if !h.isDragging {
		return
	}
	h.isDragging = false

	defer h.guard.Unlock()
	h.engine.RestoreCaret(ev.View)
	h.engine.OnExternalSelectionChanged(ev.View, !h.wasBlockCaret)
}

// OnMouseClicked handles a completed click. Clicks are ignored while a
// drag gesture is active; the host delivers them as mutually exclusive
// gesture sequences.
func (h *GestureHandler) OnMouseClicked(ev Event) {
	if !h.engine.Enabled() || h.isDragging {
		return
	}

	switch ev.Area {
	case AreaText:
		h.clickInText(ev)
	case AreaGutter, AreaFoldMargin:
		// Gutter and fold-margin clicks belong to the host surface.
	default:
		if ev.Button == ButtonRight {
			return
		}
		h.engine.Cmdline().Deactivate(false)
		ev.View.ClearEcho()
	}
}

// clickInText applies the editing-area click reactions.
func (h *GestureHandler) clickInText(ev Event) {
	h.engine.Cmdline().Deactivate(false)
	ev.View.ClearEcho()

	carets := ev.View.Carets()
	if h.engine.HasNonTrivialPending() && carets.HasSecondary() {
		carets.CollapseToPrimary()
	}

	buf := ev.View.Buffer()
	h.recordStickyColumn(buf, carets)

	if ev.ClickCount == 1 {
		if h.engine.InVisual() {
			h.engine.ExitVisual()
		} else if h.engine.InSelect() {
			h.engine.ExitSelect(true)
		}
	}

	if !h.engine.InInsert() {
		correctLineEndCarets(buf, carets)
	}
}

// recordStickyColumn remembers the primary caret's visual column for
// subsequent vertical motions.
func (h *GestureHandler) recordStickyColumn(buf *buffer.Buffer, carets *cursor.CaretSet) {
	head := carets.Primary().Selection.Head
	p := buf.OffsetToPoint(head)
	col := cursor.VisualColumn(buf.LineText(p.Line), int(p.Column), buf.TabWidth())
	carets.SetPrimarySticky(col)
}

// correctLineEndCarets snaps every caret resting exactly at a non-empty
// line's end one column left. The modal caret model forbids resting past
// the last character outside insert mode; this is a self-correction
// pass, not a new event. The step is one grapheme cluster, not one byte,
// so the caret never lands inside a multi-byte character.
func correctLineEndCarets(buf *buffer.Buffer, carets *cursor.CaretSet) {
	carets.MoveAll(func(s cursor.Selection) cursor.Selection {
		if !s.IsEmpty() {
			return s
		}
		p := buf.OffsetToPoint(s.Head)
		lineStart := buf.LineStartOffset(p.Line)
		lineEnd := buf.LineEndOffset(p.Line)
		if s.Head == lineEnd && lineEnd > lineStart {
			col := cursor.PrevGrapheme(buf.LineText(p.Line), int(p.Column))
			return s.MoveTo(lineStart + buffer.ByteOffset(col))
		}
		return s
	})
}
