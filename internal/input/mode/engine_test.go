package mode

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/modalkit/modalkit/internal/engine/buffer"
	"github.com/modalkit/modalkit/internal/engine/cursor"
	"github.com/modalkit/modalkit/internal/event"
	"github.com/modalkit/modalkit/internal/view"
)

func newTestEngine() *Engine {
	return NewEngine(zerolog.Nop())
}

func newTestView(content string) *view.View {
	return view.New(buffer.FromString(content), event.NewBus(zerolog.Nop()))
}

func TestEngineStartsInNormal(t *testing.T) {
	e := newTestEngine()
	if e.Mode() != ModeNormal {
		t.Errorf("Mode() = %q, want normal", e.Mode())
	}
	if !e.Enabled() {
		t.Error("engine should start enabled")
	}
}

func TestExternalSelectionEntersVisualForBlockCaret(t *testing.T) {
	e := newTestEngine()
	v := newTestView("hello world")
	v.SetSelectionSilently(buffer.NewRange(0, 5))

	e.OnExternalSelectionChanged(v, false)

	if !e.InVisual() {
		t.Errorf("Mode() = %q, want visual", e.Mode())
	}
	if e.VisualKind() != VisualChar {
		t.Errorf("VisualKind() = %v, want char", e.VisualKind())
	}
	if e.Notice() != "-- VISUAL --" {
		t.Errorf("Notice() = %q", e.Notice())
	}
}

func TestExternalSelectionTracksVisualKind(t *testing.T) {
	e := newTestEngine()
	v := newTestView("alpha\nbravo\ncharlie")

	// Mid-line range: character-wise.
	v.SetSelectionSilently(buffer.NewRange(1, 4))
	e.OnExternalSelectionChanged(v, false)
	if !e.InVisual() {
		t.Fatalf("Mode() = %q, want visual", e.Mode())
	}
	if e.VisualKind() != VisualChar {
		t.Errorf("VisualKind() = %v, want char", e.VisualKind())
	}

	// Whole second line: line-wise. The kind updates even though visual
	// mode is already active.
	v.SetSelectionSilently(buffer.NewRange(6, 11))
	e.OnExternalSelectionChanged(v, false)
	if e.VisualKind() != VisualLine {
		t.Errorf("VisualKind() = %v, want line", e.VisualKind())
	}

	// Two full lines ending at the start of the next: still line-wise.
	v.SetSelectionSilently(buffer.NewRange(0, 12))
	e.OnExternalSelectionChanged(v, false)
	if e.VisualKind() != VisualLine {
		t.Errorf("VisualKind() = %v, want line", e.VisualKind())
	}
}

func TestExternalSelectionWithSecondaryCaretsIsBlockKind(t *testing.T) {
	e := newTestEngine()
	v := newTestView("alpha\nbravo")
	v.Carets().AddSecondary(cursor.NewCaretSelection(8))
	v.SetSelectionSilently(buffer.NewRange(0, 2))

	e.OnExternalSelectionChanged(v, false)

	if e.VisualKind() != VisualBlock {
		t.Errorf("VisualKind() = %v, want block", e.VisualKind())
	}
}

func TestExternalSelectionEntersSelectForExclusiveCaret(t *testing.T) {
	e := newTestEngine()
	v := newTestView("hello world")
	v.SetSelectionSilently(buffer.NewRange(0, 5))

	e.OnExternalSelectionChanged(v, true)

	if !e.InSelect() {
		t.Errorf("Mode() = %q, want select", e.Mode())
	}
}

func TestExternalEmptySelectionLeavesVisual(t *testing.T) {
	e := newTestEngine()
	v := newTestView("hello world")

	v.SetSelectionSilently(buffer.NewRange(0, 5))
	e.OnExternalSelectionChanged(v, false)
	if !e.InVisual() {
		t.Fatalf("Mode() = %q, want visual", e.Mode())
	}

	v.SetSelectionSilently(buffer.NewRange(3, 3))
	e.OnExternalSelectionChanged(v, false)
	if e.Mode() != ModeNormal {
		t.Errorf("Mode() = %q, want normal", e.Mode())
	}
}

func TestExternalSelectionIgnoredWhenDisabled(t *testing.T) {
	e := newTestEngine()
	e.SetEnabled(false)
	v := newTestView("hello")
	v.SetSelectionSilently(buffer.NewRange(0, 3))

	e.OnExternalSelectionChanged(v, false)

	if e.Mode() != ModeNormal {
		t.Errorf("Mode() = %q, want normal while disabled", e.Mode())
	}
}

func TestExitSelectSilentKeepsNotice(t *testing.T) {
	e := newTestEngine()
	v := newTestView("hello")
	v.SetSelectionSilently(buffer.NewRange(0, 3))

	e.OnExternalSelectionChanged(v, true)
	notice := e.Notice()
	if notice == "" {
		t.Fatal("entering select should set a notice")
	}

	e.ExitSelect(true)
	if e.Mode() != ModeNormal {
		t.Errorf("Mode() = %q, want normal", e.Mode())
	}
	if e.Notice() != notice {
		t.Errorf("silent exit changed notice to %q", e.Notice())
	}

	// A non-silent visual round trip clears it.
	v.SetSelectionSilently(buffer.NewRange(0, 3))
	e.OnExternalSelectionChanged(v, false)
	e.ExitVisual()
	if e.Notice() != "" {
		t.Errorf("Notice() = %q after non-silent exit, want empty", e.Notice())
	}
}

func TestForceBlockCaretRestores(t *testing.T) {
	e := newTestEngine()
	v := newTestView("hello")
	v.SetBlockCaret(false)

	e.ForceBlockCaret(v)
	if !v.UsesBlockCaret() {
		t.Fatal("caret should be forced to block")
	}

	// Repeated force keeps the original memory.
	e.ForceBlockCaret(v)
	e.RestoreCaret(v)
	if v.UsesBlockCaret() {
		t.Error("caret should be restored to bar")
	}

	// Restore without force is a no-op.
	e.RestoreCaret(v)
	if v.UsesBlockCaret() {
		t.Error("extra restore must not change the caret")
	}
}

func TestApplyCaretShapeSkipsForcedViews(t *testing.T) {
	e := newTestEngine()
	v := newTestView("hello")
	v.SetBlockCaret(false)

	e.ForceBlockCaret(v)
	e.ApplyCaretShape(v)
	if !v.UsesBlockCaret() {
		t.Error("ApplyCaretShape must not disturb a forced override")
	}

	e.RestoreCaret(v)
	e.ApplyCaretShape(v) // normal mode: block
	if !v.UsesBlockCaret() {
		t.Error("normal mode should apply a block caret")
	}
}

func TestPendingOperatorLifecycle(t *testing.T) {
	e := newTestEngine()

	if e.HasNonTrivialPending() {
		t.Fatal("no pending operator expected initially")
	}
	if _, ok := e.ConsumePending(); ok {
		t.Fatal("ConsumePending on idle engine should report false")
	}

	e.SetPending(OpToggleCase, 2)
	if !e.HasNonTrivialPending() {
		t.Error("pending operator should be reported")
	}

	p, ok := e.ConsumePending()
	if !ok || p.Operator != OpToggleCase || p.Count != 2 {
		t.Errorf("ConsumePending() = %+v, %v", p, ok)
	}
	if e.HasNonTrivialPending() {
		t.Error("pending state should be cleared after consume")
	}
}

func TestCmdlineDeactivateWithoutExecute(t *testing.T) {
	c := &Cmdline{}

	if _, ok := c.Deactivate(false); ok {
		t.Error("deactivating an inactive cmdline should report false")
	}

	c.Activate()
	c.Append("s/foo/bar/")
	if _, ok := c.Deactivate(false); ok {
		t.Error("discarding should not report an executed command")
	}
	if c.IsActive() {
		t.Error("cmdline should be inactive")
	}
	if c.LastExecuted() != "" {
		t.Errorf("LastExecuted() = %q, want empty", c.LastExecuted())
	}

	c.Activate()
	c.Append("wq")
	text, ok := c.Deactivate(true)
	if !ok || text != "wq" {
		t.Errorf("Deactivate(true) = %q, %v", text, ok)
	}
	if c.LastExecuted() != "wq" {
		t.Errorf("LastExecuted() = %q", c.LastExecuted())
	}
}
