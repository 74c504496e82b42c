package universe

import "time"

//limiter caps the frame rate
//time.Sleep is too coarse for a steady frame period, so the sleep is cut short
//by margin and the remainder is spent spinning on the clock
type limiter struct {
	interval time.Duration
	margin   time.Duration
	now      func() time.Time
	sleep    func(d time.Duration)
}

func newLimiter(interval time.Duration, margin time.Duration) *limiter {
	return &limiter{
		interval: interval,
		margin:   margin,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

//wait blocks until interval has passed since start
//elapsed is the time already spent in the frame
func (l *limiter) wait(start time.Time, elapsed time.Duration) {
	if l.interval <= 0 || elapsed >= l.interval {
		return
	}
	if rest := l.interval - elapsed - l.margin; rest > 0 {
		l.sleep(rest)
	}
	deadline := start.Add(l.interval)
	for l.now().Before(deadline) {
	}
}
