// Package view models the host editor's views and their registry.
//
// A View is one on-screen presentation of a buffer with its own native
// selection, caret set, caret shape, and echo area. One buffer may be
// shown in many views at once; their selections are kept consistent by
// the listener layer through explicit synchronization, not shared
// storage.
//
// SetSelection publishes a selection-changed event exactly the way the
// host surface would, including for changes the shim itself makes;
// silencing those is the suppression guard's job, not the view's.
// SetSelectionSilently is the side-channel-free primitive the sync layer
// uses to mirror a selection into sibling views without triggering
// another round of propagation.
package view
