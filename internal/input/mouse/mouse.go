package mouse

import (
	"time"

	"github.com/modalkit/modalkit/internal/event"
	"github.com/modalkit/modalkit/internal/view"
)

// Topics for native mouse events.
const (
	// TopicDragged carries Event payloads for drag motion (button held).
	TopicDragged event.Topic = "view.mouse.dragged"

	// TopicReleased carries Event payloads for button release.
	TopicReleased event.Topic = "view.mouse.released"

	// TopicClicked carries Event payloads for completed clicks.
	TopicClicked event.Topic = "view.mouse.clicked"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Area classifies where on the surface an event landed.
type Area uint8

const (
	// AreaText is the primary editing area.
	AreaText Area = iota
	// AreaGutter is the line-number / annotation gutter.
	AreaGutter
	// AreaFoldMargin is the code-folding margin.
	AreaFoldMargin
	// AreaOutside is anywhere else on the surface.
	AreaOutside
)

// String returns a string representation of the area.
func (a Area) String() string {
	switch a {
	case AreaText:
		return "text"
	case AreaGutter:
		return "gutter"
	case AreaFoldMargin:
		return "fold-margin"
	default:
		return "outside"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two
// positions. Good enough for click proximity detection.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event represents a native mouse event delivered by the host surface.
type Event struct {
	// View is the view the event landed on.
	View *view.View

	// Position is the screen coordinates.
	Position Position

	// Button is the mouse button involved.
	Button Button

	// Area classifies the screen region under the pointer.
	Area Area

	// ClickCount is 1 for a single click, 2 for a double click, and so
	// on. Zero for drag and release events.
	ClickCount int

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Config configures gesture handling behavior.
type Config struct {
	// MultiClickTime is the maximum time between clicks of one sequence.
	MultiClickTime time.Duration

	// MultiClickDistance is the maximum distance between clicks of one
	// sequence.
	MultiClickDistance int

	// EnableDragSelection enables selection via drag.
	EnableDragSelection bool
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MultiClickTime:      400 * time.Millisecond,
		MultiClickDistance:  4,
		EnableDragSelection: true,
	}
}
