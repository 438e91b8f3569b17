package pipeline

import "time"

// SetClock replaces the clock used to timestamp cache entries.
func (p *Pipeline) SetClock(now func() time.Time) {
	p.now = now
}
