package capture

import "time"

// rowState tracks one screen row's content-stability bookkeeping. It is
// implicitly scoped to the engine's current epoch: a full redraw clears
// every rowState rather than keying the map by (epoch, row) directly.
type rowState struct {
	content     string
	firstSeenAt time.Time
	emitted     bool

	// samples is a bounded, oldest-first window of this row's recently
	// observed content, fed to the churn filter's high-churn heuristic.
	samples []string
}
