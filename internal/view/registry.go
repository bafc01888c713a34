package view

import "github.com/modalkit/modalkit/internal/engine/buffer"

// Registry tracks which views are currently open on which buffer.
// Views are kept in open order.
type Registry struct {
	views []*View
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an open view. Adding the same view twice is a no-op.
func (r *Registry) Add(v *View) {
	for _, existing := range r.views {
		if existing == v {
			return
		}
	}
	r.views = append(r.views, v)
}

// Remove unregisters a view. Removing an unknown view is a no-op.
func (r *Registry) Remove(v *View) {
	for i, existing := range r.views {
		if existing == v {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return
		}
	}
}

// ViewsOf returns all open views presenting the given buffer.
func (r *Registry) ViewsOf(buf *buffer.Buffer) []*View {
	var out []*View
	for _, v := range r.views {
		if v.Buffer() == buf {
			out = append(out, v)
		}
	}
	return out
}

// All returns every open view.
func (r *Registry) All() []*View {
	out := make([]*View, len(r.views))
	copy(out, r.views)
	return out
}

// Len returns the number of open views.
func (r *Registry) Len() int {
	return len(r.views)
}
