// Package hook runs user Lua hooks around shim events.
//
// A hook script may define global functions that the shim calls as
// things happen: on_mode_changed(from, to) and
// on_external_selection(start, end). Hooks are best effort. A script
// that omits a function simply never hears about that event, and a
// hook that raises an error is logged and otherwise ignored.
package hook
