package suppress

import "github.com/rs/zerolog"

// Kind identifies an independent suppression domain.
// Each kind has its own depth counter; locking one kind does not
// affect another.
type Kind uint8

const (
	// KindSelection suppresses native selection-changed handling while the
	// shim adjusts carets and selections.
	KindSelection Kind = iota

	// KindDocument suppresses native document-changed handling while the
	// shim applies text edits.
	KindDocument
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSelection:
		return "selection"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Guard is a reentrant suppression counter for one Kind.
//
// The zero depth means "not locked". Lock and Unlock must be balanced;
// an unbalanced Unlock clamps the depth at zero and logs, rather than
// propagating a failure out of an event handler.
type Guard struct {
	kind  Kind
	depth int
	log   zerolog.Logger
}

// NewGuard creates a guard for the given kind.
func NewGuard(kind Kind, log zerolog.Logger) *Guard {
	return &Guard{kind: kind, log: log}
}

// Kind returns the suppression domain this guard covers.
func (g *Guard) Kind() Kind {
	return g.kind
}

// Lock increments the suppression depth and returns a release function.
// The release function is idempotent: calling it more than once releases
// only the single level this Lock acquired.
func (g *Guard) Lock() func() {
	g.depth++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		g.Unlock()
	}
}

// Unlock decrements the suppression depth.
// Returns false if the guard was already unlocked; the depth is clamped
// at zero and the violation is logged, since crashing inside an event
// handler would destabilize the whole editing surface.
func (g *Guard) Unlock() bool {
	if g.depth == 0 {
		g.log.Error().
			Stringer("kind", g.kind).
			Msg("suppress: unlock without matching lock")
		return false
	}
	g.depth--
	return true
}

// IsNotLocked reports whether no suppression is in effect.
func (g *Guard) IsNotLocked() bool {
	return g.depth == 0
}

// IsLocked reports whether at least one lock is outstanding.
func (g *Guard) IsLocked() bool {
	return g.depth > 0
}

// Depth returns the current nesting depth.
func (g *Guard) Depth() int {
	return g.depth
}

// With runs fn while the guard is locked, releasing on every exit path
// including panic.
func (g *Guard) With(fn func()) {
	release := g.Lock()
	defer release()
	fn()
}

// Set holds one guard per kind, created lazily.
// The wiring layer constructs a single Set at startup and hands the
// relevant guards to the handler layer.
type Set struct {
	guards map[Kind]*Guard
	log    zerolog.Logger
}

// NewSet creates an empty guard set.
func NewSet(log zerolog.Logger) *Set {
	return &Set{
		guards: make(map[Kind]*Guard),
		log:    log,
	}
}

// Guard returns the guard for the given kind, creating it on first use.
func (s *Set) Guard(kind Kind) *Guard {
	g, ok := s.guards[kind]
	if !ok {
		g = NewGuard(kind, s.log)
		s.guards[kind] = g
	}
	return g
}
