package cursor

import "sort"

// StickyUnset marks a caret with no remembered visual column.
const StickyUnset = -1

// Caret is one caret in a set: its selection plus the sticky visual
// column used by vertical motions.
type Caret struct {
	Selection Selection
	Sticky    int
}

// CaretSet manages the carets of one view.
// Carets are kept sorted by head offset; the first caret added is the
// primary caret and keeps that role across normalization.
type CaretSet struct {
	primary   Caret
	secondary []Caret
}

// NewCaretSet creates a caret set with a single primary caret.
func NewCaretSet(sel Selection) *CaretSet {
	return &CaretSet{primary: Caret{Selection: sel, Sticky: StickyUnset}}
}

// NewCaretSetAt creates a caret set with a single caret at the offset.
func NewCaretSetAt(offset ByteOffset) *CaretSet {
	return NewCaretSet(NewCaretSelection(offset))
}

// Primary returns the primary caret.
func (cs *CaretSet) Primary() Caret {
	return cs.primary
}

// SetPrimary replaces the primary caret's selection, keeping its sticky
// column unset (the column memory belongs to the old position).
func (cs *CaretSet) SetPrimary(sel Selection) {
	cs.primary = Caret{Selection: sel, Sticky: StickyUnset}
}

// SetPrimarySticky records the primary caret's sticky visual column.
func (cs *CaretSet) SetPrimarySticky(col int) {
	cs.primary.Sticky = col
}

// AddSecondary adds a secondary caret.
func (cs *CaretSet) AddSecondary(sel Selection) {
	cs.secondary = append(cs.secondary, Caret{Selection: sel, Sticky: StickyUnset})
	sort.Slice(cs.secondary, func(i, j int) bool {
		return cs.secondary[i].Selection.Head < cs.secondary[j].Selection.Head
	})
}

// All returns the primary caret followed by the secondary carets.
// The returned slice is safe to modify without affecting the set.
func (cs *CaretSet) All() []Caret {
	out := make([]Caret, 0, 1+len(cs.secondary))
	out = append(out, cs.primary)
	out = append(out, cs.secondary...)
	return out
}

// Count returns the number of carets in the set.
func (cs *CaretSet) Count() int {
	return 1 + len(cs.secondary)
}

// HasSecondary returns true if any secondary carets exist.
func (cs *CaretSet) HasSecondary() bool {
	return len(cs.secondary) > 0
}

// CollapseToPrimary removes all secondary carets.
func (cs *CaretSet) CollapseToPrimary() {
	cs.secondary = nil
}

// MoveAll applies fn to every caret's selection, replacing it with the
// returned selection. Sticky columns are preserved; fn is the caller's
// self-correction pass, not a fresh placement.
func (cs *CaretSet) MoveAll(fn func(Selection) Selection) {
	cs.primary.Selection = fn(cs.primary.Selection)
	for i := range cs.secondary {
		cs.secondary[i].Selection = fn(cs.secondary[i].Selection)
	}
}
