// internal/sampler/rate.go
package sampler

import "time"

// PerSecond converts two timestamped cumulative counter readings into a
// per-second rate. The second return value is false when no valid rate
// exists for the pair: the counter went backwards (reset or wraparound) or
// no time elapsed. Callers must treat false as "no rate yet", never as an
// idle zero.
func PerSecond(prev, cur uint64, prevAt, curAt time.Time) (float64, bool) {
	elapsed := curAt.Sub(prevAt).Seconds()
	if elapsed <= 0 {
		return 0, false
	}
	if cur < prev {
		return 0, false
	}
	return float64(cur-prev) / elapsed, true
}
