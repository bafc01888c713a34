package mode

import (
	"github.com/rs/zerolog"

	"github.com/modalkit/modalkit/internal/view"
)

// Engine is the modal engine the listener layer feeds external selection
// changes into. It owns the mode state machine, the pending-operator
// state, the command-line overlay, and the caret-shape override used
// during mouse drags.
type Engine struct {
	manager *Manager
	cmdline *Cmdline
	log     zerolog.Logger

	enabled    bool
	visualKind VisualKind
	pending    Pending

	// notice is the status-line message for the latest mode change
	// ("-- VISUAL --" style). muteNotice suppresses the update during
	// silent transitions.
	notice     string
	muteNotice bool

	// savedCaret remembers each view's caret shape while a forced block
	// override is in effect.
	savedCaret map[*view.View]bool
}

// NewEngine creates an engine with the built-in modes registered and
// normal mode active.
func NewEngine(log zerolog.Logger) *Engine {
	e := &Engine{
		manager:    NewManager(),
		cmdline:    &Cmdline{},
		log:        log,
		enabled:    true,
		savedCaret: make(map[*view.View]bool),
	}

	e.manager.Register(NewNormalMode())
	e.manager.Register(NewInsertMode())
	e.manager.Register(NewVisualMode())
	e.manager.Register(NewSelectMode())

	e.manager.OnChange(func(_, to Mode) {
		if e.muteNotice {
			return
		}
		if to.Name() == ModeNormal {
			e.notice = ""
			return
		}
		e.notice = "-- " + to.DisplayName() + " --"
	})

	if err := e.manager.SetInitialMode(ModeNormal); err != nil {
		// The built-in modes are registered above; this cannot fail.
		log.Error().Err(err).Msg("mode: initial mode")
	}
	return e
}

// Manager returns the underlying mode manager.
func (e *Engine) Manager() *Manager {
	return e.manager
}

// Cmdline returns the command-line overlay.
func (e *Engine) Cmdline() *Cmdline {
	return e.cmdline
}

// Enabled reports whether the shim is globally enabled.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetEnabled toggles the shim globally.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
}

// Mode returns the current mode name.
func (e *Engine) Mode() string {
	return e.manager.CurrentName()
}

// Notice returns the status-line message for the latest mode change.
func (e *Engine) Notice() string {
	return e.notice
}

// InInsert returns true in insert mode.
func (e *Engine) InInsert() bool {
	return e.manager.IsMode(ModeInsert)
}

// InVisual returns true in visual mode.
func (e *Engine) InVisual() bool {
	return e.manager.IsMode(ModeVisual)
}

// InSelect returns true in select mode.
func (e *Engine) InSelect() bool {
	return e.manager.IsMode(ModeSelect)
}

// VisualKind returns the sub-kind of the current visual selection.
// Meaningful only while in visual mode.
func (e *Engine) VisualKind() VisualKind {
	return e.visualKind
}

// Pending returns the pending operator state.
func (e *Engine) Pending() Pending {
	return e.pending
}

// SetPending arms an operator waiting for its motion argument.
func (e *Engine) SetPending(operator string, count int) {
	e.pending = Pending{Operator: operator, Count: count}
}

// ConsumePending returns and clears the pending operator.
// The caller applies the operator to the motion range it resolved;
// resolving motions is outside this package.
func (e *Engine) ConsumePending() (Pending, bool) {
	p := e.pending
	if !p.IsActive() {
		return Pending{}, false
	}
	e.pending = Pending{}
	return p, true
}

// HasNonTrivialPending returns true when a pending sub-mode is active
// that secondary carets must not survive (a click collapses them).
func (e *Engine) HasNonTrivialPending() bool {
	return e.pending.IsActive()
}

// OnExternalSelectionChanged informs the engine that a selection change
// not driven by the shim occurred on the view. A non-empty selection
// enters select mode when the host caret is exclusive (bar-shaped, the
// caret sits between characters) or visual mode when it is inclusive
// (block-shaped, the caret covers a character). An empty selection
// leaves visual or select mode.
func (e *Engine) OnExternalSelectionChanged(v *view.View, exclusiveCaret bool) {
	if !e.enabled {
		return
	}

	if v.Selection().IsEmpty() {
		if e.InVisual() {
			e.exit(ModeVisual, false)
		} else if e.InSelect() {
			e.exit(ModeSelect, true)
		}
		return
	}

	target := ModeVisual
	if exclusiveCaret {
		target = ModeSelect
	}
	// The kind tracks the selection shape, so it updates even when the
	// target mode is already active.
	e.visualKind = selectionVisualKind(v)
	if e.manager.IsMode(target) {
		return
	}
	if err := e.manager.Switch(target); err != nil {
		e.log.Error().Err(err).Str("mode", target).Msg("mode: external selection switch")
	}
}

// selectionVisualKind classifies a non-empty external selection: multiple
// carets read as a block selection, a range spanning whole lines as
// line-wise, anything else as character-wise.
func selectionVisualKind(v *view.View) VisualKind {
	if v.Carets().HasSecondary() {
		return VisualBlock
	}
	r := v.Selection().Normalized()
	buf := v.Buffer()
	start := buf.OffsetToPoint(r.Start)
	if start.Column != 0 {
		return VisualChar
	}
	end := buf.OffsetToPoint(r.End)
	if r.End == buf.LineEndOffset(end.Line) || (end.Column == 0 && r.End > r.Start) {
		return VisualLine
	}
	return VisualChar
}

// ExitVisual leaves visual mode, returning to normal mode.
// A no-op outside visual mode.
func (e *Engine) ExitVisual() {
	e.exit(ModeVisual, false)
}

// ExitSelect leaves select mode, returning to normal mode. When silent
// is true the status-line notice is left untouched (no command echo).
// A no-op outside select mode.
func (e *Engine) ExitSelect(silent bool) {
	e.exit(ModeSelect, silent)
}

func (e *Engine) exit(from string, silent bool) {
	if !e.manager.IsMode(from) {
		return
	}
	if silent {
		e.muteNotice = true
		defer func() { e.muteNotice = false }()
	}
	if err := e.manager.Switch(ModeNormal); err != nil {
		e.log.Error().Err(err).Str("from", from).Msg("mode: exit")
	}
}

// ForceBlockCaret overrides the view's caret shape to block, remembering
// the shape in effect. Repeated calls keep the original memory.
func (e *Engine) ForceBlockCaret(v *view.View) {
	if _, ok := e.savedCaret[v]; ok {
		return
	}
	e.savedCaret[v] = v.UsesBlockCaret()
	v.SetBlockCaret(true)
}

// RestoreCaret undoes a ForceBlockCaret override.
// A no-op if no override is in effect for the view.
func (e *Engine) RestoreCaret(v *view.View) {
	prev, ok := e.savedCaret[v]
	if !ok {
		return
	}
	delete(e.savedCaret, v)
	v.SetBlockCaret(prev)
}

// ApplyCaretShape sets the view's caret shape from the current mode.
// Views under a forced-block override are left alone until restored.
func (e *Engine) ApplyCaretShape(v *view.View) {
	if _, forced := e.savedCaret[v]; forced {
		return
	}
	cur := e.manager.Current()
	if cur == nil {
		return
	}
	v.SetBlockCaret(cur.CaretShape() == CaretBlock)
}
