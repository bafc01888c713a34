// Package suppress provides reentrant suppression guards.
//
// A Guard marks a window during which selection or document mutations are
// being driven by the modal shim itself, so native event handlers can tell
// shim-driven changes apart from user-driven ones. Guards nest: a caller
// that locks, invokes a routine that locks and unlocks around its own
// sub-operation, and then unlocks still observes "locked" throughout its
// outer section. A plain boolean flag would break under that nesting; the
// depth counter is the fix.
//
// Guards are injectable service objects with an explicit lifecycle (created
// at startup, shared through wiring) rather than package globals, so tests
// can construct isolated instances.
//
// All methods assume the single UI-affine execution context that delivers
// native editor events; no internal locking is performed.
package suppress
