package mode

// Cmdline is the ex-command entry overlay (": ..." at the bottom of the
// surface). It holds the pending command text while active.
type Cmdline struct {
	active       bool
	text         string
	lastExecuted string
}

// IsActive returns true while the overlay is accepting input.
func (c *Cmdline) IsActive() bool {
	return c.active
}

// Activate opens the overlay with empty pending text.
func (c *Cmdline) Activate() {
	c.active = true
	c.text = ""
}

// Append adds text to the pending command.
func (c *Cmdline) Append(s string) {
	if c.active {
		c.text += s
	}
}

// Text returns the pending command text.
func (c *Cmdline) Text() string {
	return c.text
}

// Deactivate closes the overlay. When execute is true the pending text
// is returned for dispatch and recorded; otherwise it is discarded.
// Deactivating an inactive overlay is a no-op.
func (c *Cmdline) Deactivate(execute bool) (string, bool) {
	if !c.active {
		return "", false
	}
	c.active = false
	text := c.text
	c.text = ""
	if !execute {
		return "", false
	}
	c.lastExecuted = text
	return text, true
}

// LastExecuted returns the most recently executed command text.
func (c *Cmdline) LastExecuted() string {
	return c.lastExecuted
}
