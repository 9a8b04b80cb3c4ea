// Package audio drives the looping background track.
package audio

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"go-jump/internal/sched"
)

// Source is the playback engine.
type Source interface {
	Play()
	Stop()
}

// Background keeps a Source playing. Besides the initial Play it re-triggers
// playback every interval, since some engines stop silently. At most one
// interval and one pending restart exist at any time.
type Background struct {
	src      Source
	sched    sched.Scheduler
	interval time.Duration
	logger   *log.Logger

	loop    sched.Timer
	restart sched.Timer
}

// NewBackground returns a stopped Background. src may be nil, in which case
// Start and Stop only manage timers.
func NewBackground(src Source, s sched.Scheduler, interval time.Duration, logger *log.Logger) *Background {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Background{
		src:      src,
		sched:    s,
		interval: interval,
		logger:   logger,
	}
}

// Start begins playback and arms the repeat interval, replacing any existing
// interval or pending restart.
func (b *Background) Start() {
	b.clearTimers()
	if b.src == nil {
		b.logger.Debug("no background audio source")
		return
	}
	b.src.Play()
	b.loop = b.sched.Every(b.interval, b.src.Play)
	b.logger.Debug("background audio started", "interval", b.interval)
}

// Stop cancels the interval and any pending restart, then halts playback.
// Calling it when nothing is playing is a no-op.
func (b *Background) Stop() {
	b.clearTimers()
	if b.src != nil {
		b.src.Stop()
	}
}

// RestartAfter arms a single deferred Start, cancelling a previously pending one.
func (b *Background) RestartAfter(d time.Duration) {
	sched.Cancel(b.restart)
	b.restart = b.sched.AfterFunc(d, func() {
		b.restart = nil
		b.Start()
	})
	b.logger.Debug("background audio restart armed", "delay", d)
}

// CancelRestart drops a pending restart without touching playback.
func (b *Background) CancelRestart() {
	sched.Cancel(b.restart)
	b.restart = nil
}

// Looping reports whether the repeat interval is armed.
func (b *Background) Looping() bool {
	return b.loop != nil
}

// RestartPending reports whether a deferred restart is armed.
func (b *Background) RestartPending() bool {
	return b.restart != nil
}

func (b *Background) clearTimers() {
	sched.Cancel(b.loop)
	b.loop = nil
	sched.Cancel(b.restart)
	b.restart = nil
}
