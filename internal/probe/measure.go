package probe

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Measure runs fn and returns how long it took according to clk. The real
// clock reads time.Now, so the difference uses the monotonic reading.
func Measure(clk clock.Clock, fn func()) time.Duration {
	start := clk.Now()
	fn()
	d := clk.Since(start)
	if d < 0 {
		return 0
	}
	return d
}
