package term

import "time"

// Damage describes which screen rows changed as a result of one Feed or
// Resize call. ChangedRowEnd is exclusive. FullRedraw is set when the
// change cannot be meaningfully described as a row range (clear screen,
// resize, alternate-screen switch, reset).
type Damage struct {
	Timestamp       time.Time
	ChangedRowStart int
	ChangedRowEnd   int
	FullRedraw      bool
}

// Listener observes a Damage notification alongside a read-only View of
// the terminal state at the moment the damage occurred.
type Listener func(v View, d Damage)
