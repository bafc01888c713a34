// Package listener wires the shim's handlers to native view events.
//
// SelectionSync reacts to every native selection-changed event: it routes
// externally driven changes (those arriving while the selection
// suppression guard is unlocked) into the modal engine, and mirrors the
// new selection into every sibling view of the same buffer. The two
// concerns are independent: mode adjustment tracks every external
// change even when there is only one view, and cross-view mirroring runs
// even though mode adjustment already did. A makingChanges flag bounds
// the mirroring to one pass per originating event: any selection-changed
// event observed while the handler is itself writing to sibling views is
// not propagated again.
//
// Binder is the registration glue: Attach subscribes the selection and
// mouse listeners for a view when it opens, Detach removes them when it
// closes. The operations are symmetric and idempotent.
package listener
