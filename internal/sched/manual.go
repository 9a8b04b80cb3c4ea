package sched

import "time"

// Manual is a virtual-clock Scheduler. Time only moves when Advance is called,
// which makes timer behavior deterministic in tests.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	every   time.Duration
	seq     int
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManual returns a Manual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) arm(at, every time.Duration, f func()) *manualTimer {
	m.seq++
	t := &manualTimer{at: at, every: every, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// AfterFunc arms f to fire once when the clock reaches Now()+d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	return m.arm(m.now+d, 0, f)
}

// Every arms f to fire at every multiple of d from Now().
func (m *Manual) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return m.arm(m.now+d, d, f)
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// Timers armed by callbacks fire in the same call if they fall due.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.next(target)
		if next == nil {
			break
		}
		m.now = next.at
		if next.every > 0 {
			next.at += next.every
		} else {
			next.stopped = true
		}
		next.f()
	}
	m.now = target
	m.prune()
}

// Pending returns the number of active timers.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) next(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) prune() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}
