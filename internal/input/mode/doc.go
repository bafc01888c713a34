// Package mode implements the modal engine: the Vim-style mode state
// machine the handler layer feeds external selection changes into.
//
// The engine owns NORMAL/INSERT/VISUAL/SELECT state, the pending-operator
// protocol, the command-line overlay, and the caret-shape override used
// during mouse drags. The full command grammar (operator and motion
// parsing, registers, macros) lives outside this package; the engine
// exposes exactly the surface the listener layer consumes.
package mode
