package mode

// Mode defines the interface for editor modes.
// Each mode determines how external selection changes are interpreted
// and what caret shape is displayed.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CaretShape returns the caret shape for this mode.
	CaretShape() CaretShape

	// Enter is called when entering this mode.
	Enter(ctx *Context) error

	// Exit is called when leaving this mode.
	Exit(ctx *Context) error
}

// Context provides information during mode transitions.
type Context struct {
	// PreviousMode is the mode being transitioned from (for Enter).
	PreviousMode string

	// NextMode is the mode being transitioned to (for Exit).
	NextMode string
}

// CaretShape defines the visual appearance of the caret.
type CaretShape uint8

const (
	// CaretBlock is a full-cell block caret (normal mode).
	CaretBlock CaretShape = iota

	// CaretBar is a thin vertical bar caret (insert and select mode).
	CaretBar

	// CaretUnderline is an underline caret.
	CaretUnderline
)

// String returns a human-readable caret shape name.
func (c CaretShape) String() string {
	switch c {
	case CaretBlock:
		return "block"
	case CaretBar:
		return "bar"
	case CaretUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// VisualKind is the sub-kind of a visual selection.
type VisualKind uint8

const (
	// VisualChar is character-wise visual selection.
	VisualChar VisualKind = iota

	// VisualLine is line-wise visual selection.
	VisualLine

	// VisualBlock is block/column visual selection.
	VisualBlock
)

// String returns a human-readable visual kind name.
func (k VisualKind) String() string {
	switch k {
	case VisualChar:
		return "char"
	case VisualLine:
		return "line"
	case VisualBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Standard mode names.
const (
	ModeNormal = "normal"
	ModeInsert = "insert"
	ModeVisual = "visual"
	ModeSelect = "select"
)
