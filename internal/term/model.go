package term

import (
	"log"
	"time"
)

// Options configures a new Model.
type Options struct {
	Cols       int
	Rows       int
	Scrollback int // max_history; default 50,000 if <= 0
	Logger     *log.Logger
}

// Model is the terminal state model (screen + history + parser) and the
// single entry point for mutation. It is not safe for concurrent use:
// Feed and Resize must run on one owning goroutine, and Listener
// callbacks registered via Subscribe run synchronously within that call.
type Model struct {
	screen  *Screen
	history *History
	parser  *Parser
	logger  *log.Logger

	listeners []Listener
}

// NewModel creates a Model with the given geometry and scrollback cap.
func NewModel(opts Options) *Model {
	cols, rows := opts.Cols, opts.Rows
	if cols < 1 {
		cols = 80
	}
	if rows < 1 {
		rows = 24
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		screen:  NewScreen(cols, rows),
		history: NewHistory(opts.Scrollback),
		logger:  logger,
	}
	m.screen.SetOnScroll(func(lines []*Line) {
		for _, l := range lines {
			m.history.Add(l)
		}
	})
	m.parser = NewParser(m.screen, logger)
	return m
}

// Feed parses data, mutating screen/history state, and dispatches a
// Damage notification to subscribers if anything changed.
func (m *Model) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	m.parser.Parse(data)
	m.dispatchDamage()
}

// Resize changes the terminal geometry. A resize to the current size is
// a no-op and produces no Damage notification. Returns ErrInvalidSize
// for non-positive dimensions.
func (m *Model) Resize(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return ErrInvalidSize
	}
	if cols == m.screen.Width() && rows == m.screen.Height() {
		return nil
	}
	m.screen.Resize(cols, rows)
	m.dispatchDamage()
	return nil
}

// Subscribe registers a Listener invoked on every Damage notification,
// in registration order. A Listener that panics is logged and does not
// prevent subsequently registered listeners from running.
func (m *Model) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Model) dispatchDamage() {
	start, end, full := m.screen.takeDamage()
	if start == end && !full {
		return
	}
	d := Damage{
		Timestamp:       time.Now(),
		ChangedRowStart: start,
		ChangedRowEnd:   end,
		FullRedraw:      full,
	}
	view := View{m: m}
	for _, l := range m.listeners {
		m.invoke(l, view, d)
	}
}

func (m *Model) invoke(l Listener, v View, d Damage) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Printf("term: damage listener panicked, continuing: %v", r)
		}
	}()
	l(v, d)
}

// View returns a read-only projection of the current terminal state,
// usable outside of a Damage dispatch (e.g. for an initial snapshot).
func (m *Model) View() View { return View{m: m} }
