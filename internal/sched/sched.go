// Package sched provides cancellable timers for a single-threaded game loop.
//
// Callbacks never run concurrently with each other or with the code that armed
// them: Loop delivers them back onto the event loop, and Manual only fires them
// from inside Advance.
package sched

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a handle to a pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the timer was still active.
	Stop() bool
}

// Scheduler arms fire-once and repeating timers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// Cancel stops t if it is non-nil. It is safe to call with a stopped timer.
func Cancel(t Timer) {
	if t != nil {
		t.Stop()
	}
}

// Loop is a real-time Scheduler. Timer goroutines only hand callbacks to the
// post function; the event loop is expected to run them.
type Loop struct {
	mu   sync.RWMutex
	post func(func())
}

// NewLoop returns a Loop that drops callbacks until Attach is called.
func NewLoop() *Loop {
	return &Loop{}
}

// Attach sets the function used to deliver callbacks to the event loop.
func (l *Loop) Attach(post func(func())) {
	l.mu.Lock()
	l.post = post
	l.mu.Unlock()
}

func (l *Loop) deliver(f func()) {
	l.mu.RLock()
	post := l.post
	l.mu.RUnlock()
	if post != nil {
		post(f)
	}
}

type loopTimer struct {
	stopped atomic.Bool
	timer   *time.Timer
	done    chan struct{}
}

func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.done != nil {
		close(t.done)
	}
	return true
}

// AfterFunc runs f once on the event loop after d.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.deliver(func() {
			// A Stop issued after the timer fired but before delivery still wins.
			if t.stopped.Swap(true) {
				return
			}
			f()
		})
	})
	return t
}

// Every runs f on the event loop every d until stopped.
func (l *Loop) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	t := &loopTimer{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				l.deliver(func() {
					if !t.stopped.Load() {
						f()
					}
				})
			}
		}
	}()
	return t
}
