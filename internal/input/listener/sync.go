package listener

import (
	"github.com/rs/zerolog"

	"github.com/modalkit/modalkit/internal/engine/buffer"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/suppress"
	"github.com/modalkit/modalkit/internal/view"
)

// SelectionSync keeps the modal engine and sibling views in step with
// native selection changes. It implements SelectionListener.
type SelectionSync struct {
	engine   *mode.Engine
	guard    *suppress.Guard
	registry *view.Registry
	log      zerolog.Logger

	// makingChanges is true only while this handler is itself writing to
	// sibling views; selection events observed in that window are not
	// propagated again.
	makingChanges bool

	// mirror writes one sibling's selection. Overridable for tests that
	// simulate hosts whose mirror writes raise further native events.
	mirror func(sibling *view.View, r buffer.Range)
}

// NewSelectionSync creates a sync handler over the given engine, guard,
// and view registry.
func NewSelectionSync(engine *mode.Engine, guard *suppress.Guard, registry *view.Registry, log zerolog.Logger) *SelectionSync {
	s := &SelectionSync{
		engine:   engine,
		guard:    guard,
		registry: registry,
		log:      log,
	}
	s.mirror = func(sibling *view.View, r buffer.Range) {
		sibling.SetSelectionSilently(r)
	}
	return s
}

// OnSelectionChanged handles one native selection-changed event.
//
// Mode adjustment and cross-view mirroring are independent concerns:
// the first runs for every externally driven change even when there is
// only one view; the second runs even though the first already did.
func (s *SelectionSync) OnSelectionChanged(ev view.SelectionChanged) {
	// An unlocked guard means the change was not shim-driven: let the
	// modal engine adjust visual/select state.
	if s.guard.IsNotLocked() {
		s.engine.OnExternalSelectionChanged(ev.View, !ev.View.UsesBlockCaret())
	}

	// One broadcast pass per originating event; none while the host is
	// replaying batched document events.
	if s.makingChanges || ev.View.Buffer().IsProcessingInternalEvents() {
		return
	}

	s.makingChanges = true
	defer func() { s.makingChanges = false }()

	for _, sibling := range s.registry.ViewsOf(ev.View.Buffer()) {
		if sibling == ev.View {
			continue
		}
		s.mirror(sibling, ev.New)
	}
}
