// Package mouse provides the mouse event model and the gesture handler.
//
// Events carry the view they landed on, a screen-area classification,
// the button, and a click count; drag and release events drive a small
// {Idle, Dragging} state machine. The gesture handler holds the
// selection suppression guard for the whole of a drag gesture (native
// drag events repeat continuously, so the first event latches the state
// and the rest are no-ops) and feeds the final selection into the modal
// engine exactly once on release.
//
// Clicks are independent of the drag machine: they reset the command
// line and echo area, collapse secondary carets under a pending
// operator, record the sticky column, and snap carets off a non-empty
// line's end outside insert mode. Clicks arriving while a drag is active
// are ignored; drag and click gesture sequences are treated as mutually
// exclusive.
package mouse
