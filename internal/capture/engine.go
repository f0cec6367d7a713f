package capture

import (
	"time"

	"github.com/dshills/captty/internal/capture/churn"
	"github.com/dshills/captty/internal/term"
	"github.com/dshills/captty/internal/transcript"
)

// Config holds the engine's tunables, matching spec.md's capture
// configuration surface.
type Config struct {
	// VolatileRowCount is the number of bottom screen rows excluded from
	// stability tracking entirely (the spinner/progress region).
	VolatileRowCount int
	// StabilityWindow is how long a screen row's content must remain
	// unchanged before it is eligible for emission.
	StabilityWindow time.Duration
	// SuppressAlternateScreen, when true, withholds screen-stable
	// emissions while the terminal is in the alternate screen buffer.
	SuppressAlternateScreen bool
}

func (c Config) validate() error {
	if c.VolatileRowCount < 0 || c.StabilityWindow < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// sampleWindowSize bounds how many prior samples are kept for the
// churn filter's high-churn heuristic (which requires at least 6).
const sampleWindowSize = 8

// Engine converts term.Damage notifications into churn-suppressed
// transcript.Events. It is stateful and not safe for concurrent use;
// it is meant to be driven from the same goroutine that owns the
// term.Model it observes.
type Engine struct {
	config Config
	filter churn.Filter

	lastEmittedHistoryIndex int
	historySamples          []string
	rowStates               map[int]*rowState
	emittedHashes           map[uint64]struct{}
	epoch                   uint64
}

// NewEngine constructs an Engine. filter must not be nil; pass
// churn.Default{} for the conservative built-in policy.
func NewEngine(config Config, filter churn.Filter) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if filter == nil {
		return nil, ErrInvalidConfig
	}
	return &Engine{
		config:        config,
		filter:        filter,
		rowStates:     make(map[int]*rowState),
		emittedHashes: make(map[uint64]struct{}),
	}, nil
}

// OnDamage handles one term.Damage notification and returns the
// transcript events it produces, in emission order. It is intended to
// be registered directly as a term.Listener via a thin adapter:
//
//	model.Subscribe(func(v term.View, d term.Damage) {
//	    events := engine.OnDamage(v, d)
//	    ...
//	})
func (e *Engine) OnDamage(v term.View, d term.Damage) []transcript.Event {
	var out []transcript.Event
	now := time.Now()

	if d.FullRedraw {
		e.epoch++
		e.rowStates = make(map[int]*rowState)
	}

	out = e.appendHistoryDeltas(v, now, out)

	if v.AlternateScreen() && e.config.SuppressAlternateScreen {
		e.rowStates = make(map[int]*rowState)
		return out
	}

	out = e.trackScreenStability(v, now, out)
	e.pruneStaleRows(v.ScreenRowCount())

	return out
}

func (e *Engine) appendHistoryDeltas(v term.View, now time.Time, out []transcript.Event) []transcript.Event {
	historyCount := v.HistoryLineCount()
	if e.lastEmittedHistoryIndex < 0 {
		e.lastEmittedHistoryIndex = 0
	}
	if e.lastEmittedHistoryIndex > historyCount {
		e.lastEmittedHistoryIndex = historyCount
	}

	lines, err := v.ReadHistoryLines(e.lastEmittedHistoryIndex, historyCount)
	if err != nil {
		return out
	}
	for _, line := range lines {
		normalized := normalizeLine(line)
		if normalized == "" {
			continue
		}
		recent := append([]string(nil), e.historySamples...)
		suppress := e.filter.ShouldSuppress(normalized, recent)
		e.historySamples = pushSample(e.historySamples, normalized, sampleWindowSize)
		if suppress {
			continue
		}
		h := fingerprint(normalized)
		if _, seen := e.emittedHashes[h]; seen {
			continue
		}
		e.emittedHashes[h] = struct{}{}
		out = append(out, transcript.NewAppend(normalized+"\n", now, transcript.Scrollback))
	}
	e.lastEmittedHistoryIndex = historyCount
	return out
}

func (e *Engine) trackScreenStability(v term.View, now time.Time, out []transcript.Event) []transcript.Event {
	screenRows := v.ScreenRowCount()
	stableRowLimit := screenRows - e.config.VolatileRowCount
	if stableRowLimit < 0 {
		stableRowLimit = 0
	}

	lines, err := v.ReadScreenLines(0, stableRowLimit)
	if err != nil {
		return out
	}

	for row, raw := range lines {
		content := normalizeLine(raw)

		state, ok := e.rowStates[row]
		if !ok {
			state = &rowState{content: content, firstSeenAt: now}
			e.rowStates[row] = state
		} else if content != state.content {
			state.content = content
			state.firstSeenAt = now
			state.emitted = false
		} else if !state.emitted && now.Sub(state.firstSeenAt) >= e.config.StabilityWindow {
			if content != "" {
				recent := append([]string(nil), state.samples...)
				if !e.filter.ShouldSuppress(content, recent) {
					h := fingerprint(content)
					if _, seen := e.emittedHashes[h]; !seen {
						e.emittedHashes[h] = struct{}{}
						out = append(out, transcript.NewAppend(content+"\n", now, transcript.ScreenStable))
					}
				}
			}
			state.emitted = true
		}
		state.samples = pushSample(state.samples, content, sampleWindowSize)
	}
	return out
}

// pushSample appends s to samples, dropping the oldest entries once
// the window exceeds max.
func pushSample(samples []string, s string, max int) []string {
	samples = append(samples, s)
	if len(samples) > max {
		samples = samples[len(samples)-max:]
	}
	return samples
}

func (e *Engine) pruneStaleRows(screenRows int) {
	for row := range e.rowStates {
		if row >= screenRows {
			delete(e.rowStates, row)
		}
	}
}

// normalizeLine right-trims trailing space, tab, and NUL bytes (the
// terminal model fills blank cells with spaces; NUL is trimmed as well
// for views that mark untouched cells with it). Leading whitespace is
// never trimmed: indentation is content.
func normalizeLine(s string) string {
	end := len(s)
	for end > 0 && isPadByte(s[end-1]) {
		end--
	}
	return s[:end]
}

func isPadByte(b byte) bool {
	return b == ' ' || b == '\t' || b == 0
}
