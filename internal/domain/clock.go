package domain

import "github.com/jonboulle/clockwork"

// clock stamps AdvisoryReport.ProcessedAt. It is the only time source in the package.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
