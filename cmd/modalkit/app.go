package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/modalkit/modalkit/internal/config"
	"github.com/modalkit/modalkit/internal/engine/buffer"
	"github.com/modalkit/modalkit/internal/engine/cursor"
	"github.com/modalkit/modalkit/internal/event"
	"github.com/modalkit/modalkit/internal/hook"
	"github.com/modalkit/modalkit/internal/input/listener"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/input/mouse"
	"github.com/modalkit/modalkit/internal/suppress"
	"github.com/modalkit/modalkit/internal/view"
)

const gutterWidth = 4

const sampleText = `Welcome to the modalkit demo.
Both panes present this same buffer.
Drag with the mouse to select text;
the selection mirrors into the other
pane and the mode line flips to
-- VISUAL -- as it would in Vim.

	A tab-indented line for sticky columns.
Click anywhere to drop the caret.
Press i for insert mode, Esc to leave,
: for the command line, q to quit.`

// app wires the shim together behind a tcell screen.
type app struct {
	screen tcell.Screen
	cfg    config.Config
	log    zerolog.Logger

	bus      *event.Bus
	registry *view.Registry
	engine   *mode.Engine
	guard    *suppress.Guard
	binder   *listener.Binder
	hooks    *hook.Runner

	buf   *buffer.Buffer
	views []*view.View

	// Mouse gesture state between tcell events.
	clicks   *mouse.ClickTracker
	pressed  bool
	dragging bool
	pressAt  mouse.Position
	anchor   buffer.ByteOffset
	active   *view.View
}

func newApp(cfg config.Config, hooks *hook.Runner, log zerolog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	guards := suppress.NewSet(log)
	guard := guards.Guard(suppress.KindSelection)
	bus := event.NewBus(log)
	registry := view.NewRegistry()
	engine := mode.NewEngine(log)
	engine.SetEnabled(cfg.Enabled)

	sync := listener.NewSelectionSync(engine, guard, registry, log)
	gesture := mouse.NewGestureHandler(engine, guard, cfg.Mouse(), log)
	binder := listener.NewBinder(bus, registry, sync, gesture)

	buf := buffer.FromString(sampleText)
	buf.SetTabWidth(cfg.TabWidth)

	a := &app{
		screen:   screen,
		cfg:      cfg,
		log:      log,
		bus:      bus,
		registry: registry,
		engine:   engine,
		guard:    guard,
		binder:   binder,
		hooks:    hooks,
		buf:      buf,
		clicks:   mouse.NewClickTracker(cfg.MultiClickTime, cfg.MultiClickDistance),
	}

	for i := 0; i < 2; i++ {
		v := view.New(buf, bus)
		binder.Attach(v)
		a.views = append(a.views, v)
	}

	if hooks != nil {
		engine.Manager().OnChange(func(from, to mode.Mode) {
			hooks.ModeChanged(from.Name(), to.Name())
		})
		bus.SubscribeFunc(view.TopicSelectionChanged, func(ev event.Event) {
			p, ok := ev.Payload.(view.SelectionChanged)
			if ok && guard.IsNotLocked() {
				hooks.ExternalSelection(p.New)
			}
		})
	}

	return a, nil
}

func (a *app) shutdown() {
	a.screen.Fini()
}

// loop runs the demo until the user quits.
func (a *app) loop() error {
	for {
		a.render()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

// handleKey processes a key event. Returns true when the demo should quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	cmdline := a.engine.Cmdline()
	if cmdline.IsActive() {
		switch ev.Key() {
		case tcell.KeyEnter:
			cmdline.Deactivate(true)
		case tcell.KeyEscape:
			cmdline.Deactivate(false)
		case tcell.KeyRune:
			cmdline.Append(string(ev.Rune()))
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		if a.engine.InInsert() {
			a.switchMode(mode.ModeNormal)
			return false
		}
		// Collapse the focused view's selection; the resulting empty
		// external change exits visual or select mode on its own.
		v := a.focused()
		head := v.Carets().Primary().Selection.Head
		v.SetSelection(buffer.NewRange(head, head))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			if !a.engine.InInsert() {
				return true
			}
		case 'i':
			if !a.engine.InInsert() {
				a.switchMode(mode.ModeInsert)
			}
		case ':':
			if !a.engine.InInsert() {
				cmdline.Activate()
			}
		}
	}
	return false
}

func (a *app) switchMode(name string) {
	if err := a.engine.Manager().Switch(name); err != nil {
		a.log.Error().Err(err).Str("mode", name).Msg("demo: switch")
		return
	}
	for _, v := range a.views {
		a.engine.ApplyCaretShape(v)
	}
}

// focused returns the view the current gesture targets, defaulting to
// the first pane.
func (a *app) focused() *view.View {
	if a.active != nil {
		return a.active
	}
	return a.views[0]
}

// handleMouse translates tcell mouse state transitions into the native
// drag/release/click events the shim listens for. The demo plays the
// host: it moves the selection itself and raises the events the way a
// real surface would.
func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	v, area, off := a.hitTest(x, y)
	pos := mouse.Position{X: x, Y: y}
	now := time.Now()
	left := ev.Buttons()&tcell.Button1 != 0

	switch {
	case left && !a.pressed:
		if v == nil {
			return
		}
		a.pressed = true
		a.active = v
		a.anchor = off
		a.pressAt = pos

	case left && a.pressed:
		if v != a.active || v == nil {
			return
		}
		if !a.dragging && pos.Equal(a.pressAt) {
			return
		}
		a.dragging = true
		a.bus.Publish(mouse.TopicDragged, mouse.Event{
			View: v, Position: pos, Button: mouse.ButtonLeft, Area: area, Timestamp: now,
		})
		v.SetSelection(buffer.NewRange(a.anchor, off).Normalized())

	case !left && a.pressed:
		a.pressed = false
		v := a.active
		a.active = nil
		if v == nil {
			return
		}
		if a.dragging {
			a.dragging = false
			a.bus.Publish(mouse.TopicReleased, mouse.Event{
				View: v, Position: pos, Button: mouse.ButtonLeft, Area: area, Timestamp: now,
			})
			return
		}
		count := a.clicks.RecordClick(a.pressAt, now)
		v.SetSelection(buffer.NewRange(a.anchor, a.anchor))
		a.bus.Publish(mouse.TopicClicked, mouse.Event{
			View: v, Position: a.pressAt, Button: mouse.ButtonLeft, Area: area,
			ClickCount: count, Timestamp: now,
		})
	}
}

// hitTest maps screen coordinates to a view, an area, and a buffer
// offset. The demo lays both panes out side by side with a line-number
// gutter on each.
func (a *app) hitTest(x, y int) (*view.View, mouse.Area, buffer.ByteOffset) {
	w, h := a.screen.Size()
	paneW := w / 2

	idx := 0
	paneX := 0
	if x >= paneW {
		idx = 1
		paneX = paneW
	}
	v := a.views[idx]

	if y >= h-1 || y >= int(a.buf.LineCount()) {
		return v, mouse.AreaOutside, a.buf.Len()
	}
	rel := x - paneX
	if rel < gutterWidth {
		line := uint32(y)
		return v, mouse.AreaGutter, a.buf.LineStartOffset(line)
	}

	line := uint32(y)
	text := a.buf.LineText(line)
	col := byteColumn(text, rel-gutterWidth, a.buf.TabWidth())
	return v, mouse.AreaText, a.buf.LineStartOffset(line) + buffer.ByteOffset(col)
}

// byteColumn finds the byte column whose visual column is closest to,
// without exceeding, the wanted visual column.
func byteColumn(line string, visual, tabWidth int) int {
	best := 0
	for i := range line {
		if cursor.VisualColumn(line, i, tabWidth) > visual {
			return best
		}
		best = i
	}
	if cursor.VisualColumn(line, len(line), tabWidth) <= visual {
		return len(line)
	}
	return best
}

func (a *app) render() {
	a.screen.Clear()
	w, h := a.screen.Size()
	paneW := w / 2

	a.renderPane(a.views[0], 0, paneW, h-1)
	a.renderPane(a.views[1], paneW, w-paneW, h-1)
	a.renderStatus(w, h-1)
	a.screen.Show()
}

func (a *app) renderPane(v *view.View, paneX, paneW, height int) {
	base := tcell.StyleDefault
	gutterStyle := base.Foreground(tcell.ColorGray)
	selStyle := base.Reverse(true)

	sel := v.Selection().Normalized()
	caret := v.Carets().Primary().Selection.Head

	lines := int(a.buf.LineCount())
	for y := 0; y < height && y < lines; y++ {
		line := uint32(y)
		text := a.buf.LineText(line)
		start := a.buf.LineStartOffset(line)

		drawString(a.screen, paneX, y, gutterStyle, lineNumber(y+1))

		col := 0
		for i, r := range text {
			off := start + buffer.ByteOffset(i)
			style := base
			if !sel.IsEmpty() && sel.Contains(off) {
				style = selStyle
			}
			if off == caret {
				style = caretStyle(base, v.UsesBlockCaret())
			}
			if r == '\t' {
				next := (col/a.buf.TabWidth() + 1) * a.buf.TabWidth()
				for ; col < next && paneX+gutterWidth+col < paneX+paneW; col++ {
					a.screen.SetContent(paneX+gutterWidth+col, y, ' ', nil, style)
				}
				continue
			}
			if paneX+gutterWidth+col >= paneX+paneW {
				break
			}
			a.screen.SetContent(paneX+gutterWidth+col, y, r, nil, style)
			col++
		}

		// Caret past the last character renders on the trailing cell.
		if caret == a.buf.LineEndOffset(line) && caret >= start {
			if paneX+gutterWidth+col < paneX+paneW {
				a.screen.SetContent(paneX+gutterWidth+col, y, ' ', nil, caretStyle(base, v.UsesBlockCaret()))
			}
		}
	}
}

func (a *app) renderStatus(width, y int) {
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}

	status := " " + a.engine.Mode()
	if n := a.engine.Notice(); n != "" {
		status += "  " + n
	}
	if a.engine.Cmdline().IsActive() {
		status += "  :" + a.engine.Cmdline().Text()
	}
	if echo := a.focused().Echo(); echo != "" {
		status += "  " + echo
	}
	drawString(a.screen, 0, y, style, status)
}

func caretStyle(base tcell.Style, block bool) tcell.Style {
	if block {
		return base.Reverse(true)
	}
	return base.Underline(true)
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func lineNumber(n int) string {
	digits := []byte("   ")
	for i := len(digits) - 1; i >= 0 && n > 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}
