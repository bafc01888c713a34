package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/modalkit/modalkit/internal/engine/buffer"
)

func TestModeChangedHook(t *testing.T) {
	r, err := NewRunnerFromString(`
		calls = {}
		function on_mode_changed(from, to)
			table.insert(calls, from .. ">" .. to)
		end
	`, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRunnerFromString: %v", err)
	}
	defer r.Close()

	r.ModeChanged("normal", "visual")
	r.ModeChanged("visual", "normal")

	calls := r.L.GetGlobal("calls")
	first := r.L.GetTable(calls, lua.LNumber(1))
	if got := first.String(); got != "normal>visual" {
		t.Errorf("first call = %q, want %q", got, "normal>visual")
	}
}

func TestExternalSelectionHook(t *testing.T) {
	r, err := NewRunnerFromString(`
		function on_external_selection(s, e)
			last_start, last_end = s, e
		end
	`, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRunnerFromString: %v", err)
	}
	defer r.Close()

	r.ExternalSelection(buffer.NewRange(5, 12))

	if got := r.L.GetGlobal("last_start").String(); got != "5" {
		t.Errorf("last_start = %q, want 5", got)
	}
	if got := r.L.GetGlobal("last_end").String(); got != "12" {
		t.Errorf("last_end = %q, want 12", got)
	}
}

func TestAbsentHookSkipped(t *testing.T) {
	r, err := NewRunnerFromString(`x = 1`, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRunnerFromString: %v", err)
	}
	defer r.Close()

	// Must not panic or error when the script defines no hooks.
	r.ModeChanged("normal", "insert")
	r.ExternalSelection(buffer.NewRange(0, 0))
}

func TestHookErrorSwallowed(t *testing.T) {
	r, err := NewRunnerFromString(`
		function on_mode_changed(from, to)
			error("boom")
		end
	`, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRunnerFromString: %v", err)
	}
	defer r.Close()

	// Errors raised by a hook are logged, not propagated.
	r.ModeChanged("normal", "visual")
}

func TestRunnerFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hooks.lua")
	script := `
		function on_mode_changed(from, to)
			seen = to
		end
	`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := NewRunner(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	defer r.Close()

	r.ModeChanged("normal", "select")
	if got := r.L.GetGlobal("seen").String(); got != "select" {
		t.Errorf("seen = %q, want select", got)
	}
}

func TestRunnerRejectsBrokenScript(t *testing.T) {
	if _, err := NewRunnerFromString(`function (`, zerolog.Nop()); err == nil {
		t.Error("broken script should fail to load")
	}
}
