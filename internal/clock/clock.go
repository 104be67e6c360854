package clock

import (
	"context"
	"time"
)

// Clock is the authoritative source of "now" for deadline checks and bid timestamps.
type Clock interface {
	Now() time.Time
}

// System reads the process wall clock
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// Ticks emits clk.Now() every interval until ctx is done, then closes the channel.
// A tick is skipped when the previous one has not been consumed yet.
func Ticks(ctx context.Context, clk Clock, interval time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case ch <- clk.Now():
				default:
				}
			}
		}
	}()

	return ch
}
