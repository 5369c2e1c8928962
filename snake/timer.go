package snake

import "time"

// maxCatchUp bounds how many overdue ticks a single poll may report
const maxCatchUp = 5

// Timer is a repeating interval timer polled from the frame loop.
// The first tick is due one interval after Start.
type Timer struct {
	interval time.Duration
	next     time.Time
	active   bool
}

// Start arms the timer, replacing any previous schedule
func (t *Timer) Start(now time.Time, interval time.Duration) {
	t.interval = interval
	t.next = now.Add(interval)
	t.active = true
}

// Clear cancels the timer. Clearing an inactive timer is a no-op.
func (t *Timer) Clear() {
	t.active = false
}

// Active reports whether ticks are being scheduled
func (t *Timer) Active() bool {
	return t.active
}

// Interval returns the current period
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Due returns how many ticks elapsed up to now and re-arms the timer.
// When the loop falls far behind, the schedule restarts from now.
func (t *Timer) Due(now time.Time) int {
	if !t.active || t.interval <= 0 {
		return 0
	}
	n := 0
	for !now.Before(t.next) {
		n++
		t.next = t.next.Add(t.interval)
		if n == maxCatchUp {
			t.next = now.Add(t.interval)
			break
		}
	}
	return n
}
