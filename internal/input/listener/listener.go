package listener

import (
	"github.com/modalkit/modalkit/internal/input/mouse"
	"github.com/modalkit/modalkit/internal/view"
)

// SelectionListener receives native selection-changed events.
type SelectionListener interface {
	OnSelectionChanged(ev view.SelectionChanged)
}

// MouseListener receives native mouse events.
type MouseListener interface {
	OnMouseDragged(ev mouse.Event)
	OnMouseReleased(ev mouse.Event)
	OnMouseClicked(ev mouse.Event)
}
