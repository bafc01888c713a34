package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/modalkit/modalkit/internal/input/mouse"
)

// Config holds the shim's behavior settings.
type Config struct {
	// Enabled toggles the whole shim.
	Enabled bool

	// TabWidth is the display width of a tab, used for sticky columns.
	TabWidth int

	// HookScript is the path of the optional Lua hook script.
	HookScript string

	// MultiClickTime is the maximum time between clicks of one sequence.
	MultiClickTime time.Duration

	// MultiClickDistance is the maximum distance between clicks of one
	// sequence.
	MultiClickDistance int

	// EnableDragSelection enables selection via drag.
	EnableDragSelection bool
}

// Default returns the default configuration.
func Default() Config {
	m := mouse.DefaultConfig()
	return Config{
		Enabled:             true,
		TabWidth:            4,
		MultiClickTime:      m.MultiClickTime,
		MultiClickDistance:  m.MultiClickDistance,
		EnableDragSelection: m.EnableDragSelection,
	}
}

// Parse reads a configuration from JSON. Unknown keys are ignored;
// missing or type-mismatched values keep their defaults.
func Parse(data []byte) Config {
	c := Default()
	if !gjson.ValidBytes(data) {
		return c
	}

	c.Enabled = boolOr(gjson.GetBytes(data, "enabled"), c.Enabled)
	c.TabWidth = intOr(gjson.GetBytes(data, "tabWidth"), c.TabWidth)
	c.HookScript = stringOr(gjson.GetBytes(data, "hookScript"), c.HookScript)

	if ms := intOr(gjson.GetBytes(data, "mouse.multiClickTimeMs"), 0); ms > 0 {
		c.MultiClickTime = time.Duration(ms) * time.Millisecond
	}
	c.MultiClickDistance = intOr(gjson.GetBytes(data, "mouse.multiClickDistance"), c.MultiClickDistance)
	c.EnableDragSelection = boolOr(gjson.GetBytes(data, "mouse.dragSelection"), c.EnableDragSelection)

	if c.TabWidth < 1 {
		c.TabWidth = 1
	}
	if c.MultiClickDistance < 0 {
		c.MultiClickDistance = 0
	}
	return c
}

// Load reads a configuration file. A missing file yields the defaults
// without error; an unreadable one returns the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data), nil
}

// Mouse returns the mouse handler configuration.
func (c Config) Mouse() mouse.Config {
	return mouse.Config{
		MultiClickTime:      c.MultiClickTime,
		MultiClickDistance:  c.MultiClickDistance,
		EnableDragSelection: c.EnableDragSelection,
	}
}

// JSON serializes the effective configuration.
func (c Config) JSON() ([]byte, error) {
	var (
		out = []byte("{}")
		err error
	)
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("enabled", c.Enabled)
	set("tabWidth", c.TabWidth)
	set("hookScript", c.HookScript)
	set("mouse.multiClickTimeMs", int(c.MultiClickTime/time.Millisecond))
	set("mouse.multiClickDistance", c.MultiClickDistance)
	set("mouse.dragSelection", c.EnableDragSelection)

	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

// boolOr returns the result's boolean value, or fallback when absent or
// not a boolean.
func boolOr(r gjson.Result, fallback bool) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return fallback
	}
}

// intOr returns the result's integer value, or fallback when absent or
// not a number.
func intOr(r gjson.Result, fallback int) int {
	if r.Type != gjson.Number {
		return fallback
	}
	return int(r.Int())
}

// stringOr returns the result's string value, or fallback when absent
// or not a string.
func stringOr(r gjson.Result, fallback string) string {
	if r.Type != gjson.String {
		return fallback
	}
	return r.String()
}
