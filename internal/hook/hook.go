package hook

import (
	"fmt"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/modalkit/modalkit/internal/engine/buffer"
)

// Hook function names the script may define.
const (
	fnModeChanged       = "on_mode_changed"
	fnExternalSelection = "on_external_selection"
)

// Runner owns a Lua state with a loaded hook script.
//
// gopher-lua's LState is not goroutine-safe. The shim delivers all
// events on one goroutine, so the Runner relies on that and adds no
// locking of its own.
type Runner struct {
	L   *lua.LState
	log zerolog.Logger
}

// NewRunner creates a Lua state and runs the script at path. The
// script's top level executes once; hook functions it defines are
// called later as events arrive.
func NewRunner(path string, log zerolog.Logger) (*Runner, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("load hook script %s: %w", path, err)
	}
	return &Runner{L: L, log: log}, nil
}

// NewRunnerFromString runs an inline script instead of a file.
func NewRunnerFromString(src string, log zerolog.Logger) (*Runner, error) {
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("load hook script: %w", err)
	}
	return &Runner{L: L, log: log}, nil
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.L.Close()
}

// ModeChanged invokes on_mode_changed(from, to) if the script defines it.
func (r *Runner) ModeChanged(from, to string) {
	r.call(fnModeChanged, lua.LString(from), lua.LString(to))
}

// ExternalSelection invokes on_external_selection(start, end) if the
// script defines it.
func (r *Runner) ExternalSelection(rng buffer.Range) {
	r.call(fnExternalSelection, lua.LNumber(rng.Start), lua.LNumber(rng.End))
}

// call runs a global hook function by name. Missing functions are
// skipped; errors are logged and swallowed.
func (r *Runner) call(name string, args ...lua.LValue) {
	fn, ok := r.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return
	}
	err := r.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...)
	if err != nil {
		r.log.Warn().Err(err).Str("hook", name).Msg("hook failed")
	}
}
