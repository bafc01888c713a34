package mode

// baseMode provides the shared shape of the built-in modes.
type baseMode struct {
	name    string
	display string
	caret   CaretShape
}

func (b baseMode) Name() string             { return b.name }
func (b baseMode) DisplayName() string      { return b.display }
func (b baseMode) CaretShape() CaretShape   { return b.caret }
func (b baseMode) Enter(ctx *Context) error { return nil }
func (b baseMode) Exit(ctx *Context) error  { return nil }

// NewNormalMode creates the normal mode.
func NewNormalMode() Mode {
	return baseMode{name: ModeNormal, display: "NORMAL", caret: CaretBlock}
}

// NewInsertMode creates the insert mode.
func NewInsertMode() Mode {
	return baseMode{name: ModeInsert, display: "INSERT", caret: CaretBar}
}

// NewVisualMode creates the visual mode.
func NewVisualMode() Mode {
	return baseMode{name: ModeVisual, display: "VISUAL", caret: CaretBlock}
}

// NewSelectMode creates the select mode.
// Select mode uses a bar caret: the host surface drives the selection
// and typing replaces it, as in host-native selection editing.
func NewSelectMode() Mode {
	return baseMode{name: ModeSelect, display: "SELECT", caret: CaretBar}
}
