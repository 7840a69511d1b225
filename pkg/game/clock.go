package game

import (
	"context"
	"fmt"
	"time"
)

// Clock calls a function on every tick until its context is done. It is the
// only source of pacing for a session.
type Clock struct {
	Interval time.Duration
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{Interval: interval}
}

func (cl *Clock) Run(ctx context.Context, fn func(now time.Time)) {
	tick := time.NewTicker(cl.Interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			fn(now)
		}
	}
}

func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
