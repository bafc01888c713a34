package mode

import (
	"errors"
	"testing"
)

func newTestManager() *Manager {
	m := NewManager()
	m.Register(NewNormalMode())
	m.Register(NewInsertMode())
	m.Register(NewVisualMode())
	m.Register(NewSelectMode())
	return m
}

func TestManagerSwitch(t *testing.T) {
	m := newTestManager()
	if err := m.SetInitialMode(ModeNormal); err != nil {
		t.Fatalf("SetInitialMode: %v", err)
	}

	if err := m.Switch(ModeInsert); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if !m.IsMode(ModeInsert) {
		t.Errorf("current = %q, want insert", m.CurrentName())
	}
	if m.Previous() == nil || m.Previous().Name() != ModeNormal {
		t.Error("previous mode should be normal")
	}
}

func TestManagerSwitchUnknown(t *testing.T) {
	m := newTestManager()
	if err := m.Switch("teleport"); err == nil {
		t.Error("Switch to unknown mode should fail")
	}
}

func TestManagerSwitchToCurrentIsNoOp(t *testing.T) {
	m := newTestManager()
	if err := m.SetInitialMode(ModeNormal); err != nil {
		t.Fatalf("SetInitialMode: %v", err)
	}

	changes := 0
	m.OnChange(func(from, to Mode) { changes++ })

	if err := m.Switch(ModeNormal); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if changes != 0 {
		t.Errorf("switching to the current mode fired %d callbacks", changes)
	}
}

func TestManagerOnChangeUnregister(t *testing.T) {
	m := newTestManager()
	if err := m.SetInitialMode(ModeNormal); err != nil {
		t.Fatalf("SetInitialMode: %v", err)
	}

	var calls []string
	remove := m.OnChange(func(from, to Mode) {
		calls = append(calls, to.Name())
	})

	if err := m.Switch(ModeVisual); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	remove()
	if err := m.Switch(ModeNormal); err != nil {
		t.Fatalf("Switch: %v", err)
	}

	if len(calls) != 1 || calls[0] != ModeVisual {
		t.Errorf("callback calls = %v, want [visual]", calls)
	}
}

func TestManagerIsAnyMode(t *testing.T) {
	m := newTestManager()
	if err := m.SetInitialMode(ModeVisual); err != nil {
		t.Fatalf("SetInitialMode: %v", err)
	}

	if !m.IsAnyMode(ModeVisual, ModeSelect) {
		t.Error("IsAnyMode(visual, select) should be true in visual")
	}
	if m.IsAnyMode(ModeInsert, ModeNormal) {
		t.Error("IsAnyMode(insert, normal) should be false in visual")
	}
}

// failingMode refuses to exit, to exercise transition error paths.
type failingMode struct{ baseMode }

var errStuck = errors.New("stuck")

func (f failingMode) Exit(ctx *Context) error { return errStuck }

func TestManagerSwitchExitError(t *testing.T) {
	m := NewManager()
	m.Register(failingMode{baseMode{name: "stuck", display: "STUCK", caret: CaretBlock}})
	m.Register(NewNormalMode())
	if err := m.SetInitialMode("stuck"); err != nil {
		t.Fatalf("SetInitialMode: %v", err)
	}

	err := m.Switch(ModeNormal)
	if !errors.Is(err, errStuck) {
		t.Fatalf("Switch error = %v, want errStuck", err)
	}
	if !m.IsMode("stuck") {
		t.Error("failed switch must leave the current mode unchanged")
	}
}
