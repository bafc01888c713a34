// Package event provides the synchronous event bus that carries native
// editor events to the shim's handler layer.
//
// Topics are hierarchical dot-separated names ("view.selection.changed",
// "view.mouse.clicked"). Delivery is strictly synchronous and in
// subscription order: Publish invokes every matching handler before it
// returns, on the caller's stack. That mirrors how host editors deliver
// native events and is what makes reentrancy the central hazard: a
// handler's own mutation can publish another event before the first
// handler returns. Handlers are panic-isolated so one failing listener
// cannot take down the delivery of an event to the others.
//
// The bus supports subscribe and unsubscribe during delivery; changes
// take effect for the next publish.
package event
