package capture

import (
	"testing"
	"time"

	"github.com/dshills/captty/internal/capture/churn"
	"github.com/dshills/captty/internal/term"
)

func newTestModel(t *testing.T, cols, rows int) *term.Model {
	t.Helper()
	return term.NewModel(term.Options{Cols: cols, Rows: rows, Scrollback: 1000})
}

func TestOnDamageEmitsScrollbackLineImmediately(t *testing.T) {
	m := newTestModel(t, 10, 3)
	eng, err := NewEngine(Config{VolatileRowCount: 1, StabilityWindow: time.Hour}, churn.Default{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	var got []string
	m.Subscribe(func(v term.View, d term.Damage) {
		for _, e := range eng.OnDamage(v, d) {
			got = append(got, e.Text)
		}
	})

	for i := 0; i < 4; i++ {
		m.Feed([]byte("line\r\n"))
	}

	if len(got) == 0 {
		t.Fatalf("expected at least one scrollback emission, got none")
	}
	if got[0] != "line\n" {
		t.Errorf("first emitted text = %q, want %q", got[0], "line\n")
	}
}

func TestOnDamageDeduplicatesIdenticalLines(t *testing.T) {
	m := newTestModel(t, 10, 3)
	eng, err := NewEngine(Config{StabilityWindow: time.Hour}, churn.Default{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	emitted := 0
	m.Subscribe(func(v term.View, d term.Damage) {
		emitted += len(eng.OnDamage(v, d))
	})

	for i := 0; i < 6; i++ {
		m.Feed([]byte("dup\r\n"))
	}

	if emitted != 1 {
		t.Errorf("emitted = %d duplicate-content scrollback events, want 1", emitted)
	}
}

func TestOnDamageSkipsBlankScrollbackLines(t *testing.T) {
	m := newTestModel(t, 10, 3)
	eng, err := NewEngine(Config{StabilityWindow: time.Hour}, churn.Default{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	var got []string
	m.Subscribe(func(v term.View, d term.Damage) {
		for _, e := range eng.OnDamage(v, d) {
			got = append(got, e.Text)
		}
	})

	m.Feed([]byte("\r\n\r\n\r\n\r\n"))

	if len(got) != 0 {
		t.Errorf("expected no emissions for blank lines, got %v", got)
	}
}

func TestOnDamageSuppressesSpinnerScrollbackLine(t *testing.T) {
	m := newTestModel(t, 10, 3)
	eng, err := NewEngine(Config{StabilityWindow: time.Hour}, churn.Default{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	var got []string
	m.Subscribe(func(v term.View, d term.Damage) {
		for _, e := range eng.OnDamage(v, d) {
			got = append(got, e.Text)
		}
	})

	for i := 0; i < 4; i++ {
		m.Feed([]byte("|\r\n"))
	}

	if len(got) != 0 {
		t.Errorf("expected spinner-only scrollback lines to be suppressed, got %v", got)
	}
}

func TestOnDamageFullRedrawResetsRowStates(t *testing.T) {
	eng, err := NewEngine(Config{StabilityWindow: 0}, churn.Default{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	m := newTestModel(t, 10, 3)

	m.Subscribe(func(v term.View, d term.Damage) { eng.OnDamage(v, d) })

	startEpoch := eng.epoch
	m.Feed([]byte("\x1b[2J"))
	if eng.epoch != startEpoch+1 {
		t.Errorf("epoch after full redraw = %d, want %d", eng.epoch, startEpoch+1)
	}
	if len(eng.rowStates) != 0 {
		t.Errorf("rowStates after full redraw = %v, want empty", eng.rowStates)
	}
}

func TestOnDamagePreservesLeadingIndentationInScrollback(t *testing.T) {
	m := newTestModel(t, 20, 3)
	eng, err := NewEngine(Config{VolatileRowCount: 1, StabilityWindow: time.Hour}, churn.Default{})
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	var got []string
	m.Subscribe(func(v term.View, d term.Damage) {
		for _, e := range eng.OnDamage(v, d) {
			got = append(got, e.Text)
		}
	})

	for i := 0; i < 4; i++ {
		m.Feed([]byte("  hello\r\n"))
	}

	if len(got) == 0 {
		t.Fatalf("expected at least one scrollback emission, got none")
	}
	if got[0] != "  hello\n" {
		t.Errorf("first emitted text = %q, want %q (leading indentation must be preserved)", got[0], "  hello\n")
	}
}

func TestNewEngineRejectsNilFilter(t *testing.T) {
	if _, err := NewEngine(Config{}, nil); err != ErrInvalidConfig {
		t.Errorf("NewEngine(nil filter) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewEngineRejectsNegativeConfig(t *testing.T) {
	if _, err := NewEngine(Config{VolatileRowCount: -1}, churn.Default{}); err != ErrInvalidConfig {
		t.Errorf("NewEngine(negative VolatileRowCount) error = %v, want ErrInvalidConfig", err)
	}
}
