package mode

import "fmt"

// Manager manages editor modes and coordinates mode transitions.
// All methods assume the single UI-affine execution context that
// delivers native editor events.
type Manager struct {
	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode.
	current Mode

	// previous is the mode before the current one.
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// NewManager creates a new mode manager.
func NewManager() *Manager {
	return &Manager{modes: make(map[string]Mode)}
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Current returns the current mode, or nil if none is set.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the name of the current mode, or "" if none is set.
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Previous returns the previous mode, or nil.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Switch changes to a different mode.
// Calls Exit on the current mode and Enter on the new mode, then
// notifies change callbacks. Switching to the current mode is a no-op.
func (m *Manager) Switch(name string) error {
	newMode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}

	oldMode := m.current
	if oldMode == newMode {
		return nil
	}

	ctx := &Context{}
	if oldMode != nil {
		ctx.NextMode = newMode.Name()
		if err := oldMode.Exit(ctx); err != nil {
			return fmt.Errorf("exit %s: %w", oldMode.Name(), err)
		}
		ctx.PreviousMode = oldMode.Name()
	}
	ctx.NextMode = ""

	if err := newMode.Enter(ctx); err != nil {
		return fmt.Errorf("enter %s: %w", newMode.Name(), err)
	}

	m.previous = oldMode
	m.current = newMode

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(oldMode, newMode)
		}
	}
	return nil
}

// SetInitialMode sets the initial mode without calling Exit on anything.
// Should only be called once during initialization.
func (m *Manager) SetInitialMode(name string) error {
	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	m.current = mode
	return mode.Enter(&Context{})
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1
	return func() {
		// Remove by setting to nil (preserves indices).
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	return m.current != nil && m.current.Name() == name
}

// IsAnyMode returns true if the current mode matches any of the names.
func (m *Manager) IsAnyMode(names ...string) bool {
	if m.current == nil {
		return false
	}
	currentName := m.current.Name()
	for _, name := range names {
		if currentName == name {
			return true
		}
	}
	return false
}

// Modes returns the names of all registered modes.
func (m *Manager) Modes() []string {
	names := make([]string, 0, len(m.modes))
	for name := range m.modes {
		names = append(names, name)
	}
	return names
}
