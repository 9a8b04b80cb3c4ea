package audio

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jump/internal/sched"
)

type countingSource struct {
	plays, stops int
}

func (c *countingSource) Play() { c.plays++ }
func (c *countingSource) Stop() { c.stops++ }

func TestBackground_StartPlaysAndRepeats(t *testing.T) {
	clock := sched.NewManual()
	src := &countingSource{}
	b := NewBackground(src, clock, 5*time.Second, nil)

	b.Start()
	assert.Equal(t, 1, src.plays)
	assert.True(t, b.Looping())

	clock.Advance(11 * time.Second)
	assert.Equal(t, 3, src.plays)
}

func TestBackground_RepeatedStartDoesNotStack(t *testing.T) {
	clock := sched.NewManual()
	src := &countingSource{}
	b := NewBackground(src, clock, 5*time.Second, nil)

	b.Start()
	b.Start()
	b.Start()
	assert.Equal(t, 1, clock.Pending())

	src.plays = 0
	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, src.plays)
}

func TestBackground_StopTwice(t *testing.T) {
	clock := sched.NewManual()
	src := &countingSource{}
	b := NewBackground(src, clock, 5*time.Second, nil)

	b.Start()
	assert.NotPanics(t, func() {
		b.Stop()
		b.Stop()
	})
	assert.False(t, b.Looping())
	assert.Equal(t, 0, clock.Pending())

	src.plays = 0
	clock.Advance(time.Minute)
	assert.Equal(t, 0, src.plays)
}

func TestBackground_StopBeforeStart(t *testing.T) {
	b := NewBackground(&countingSource{}, sched.NewManual(), time.Second, nil)
	assert.NotPanics(t, b.Stop)
}

func TestBackground_RestartAfter(t *testing.T) {
	clock := sched.NewManual()
	src := &countingSource{}
	b := NewBackground(src, clock, 5*time.Second, nil)

	b.RestartAfter(2 * time.Second)
	assert.True(t, b.RestartPending())
	assert.Equal(t, 0, src.plays)

	clock.Advance(2 * time.Second)
	assert.False(t, b.RestartPending())
	assert.True(t, b.Looping())
	assert.Equal(t, 1, src.plays)
}

func TestBackground_RestartAfterReplacesPending(t *testing.T) {
	clock := sched.NewManual()
	src := &countingSource{}
	b := NewBackground(src, clock, 5*time.Second, nil)

	b.RestartAfter(2 * time.Second)
	clock.Advance(time.Second)
	b.RestartAfter(2 * time.Second)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, 0, src.plays, "first restart was cancelled")

	clock.Advance(time.Second)
	assert.Equal(t, 1, src.plays)
}

func TestBackground_StopCancelsRestart(t *testing.T) {
	clock := sched.NewManual()
	src := &countingSource{}
	b := NewBackground(src, clock, 5*time.Second, nil)

	b.RestartAfter(2 * time.Second)
	b.Stop()
	clock.Advance(10 * time.Second)

	assert.Equal(t, 0, src.plays)
	assert.False(t, b.RestartPending())
}

func TestBackground_CancelRestartKeepsLoop(t *testing.T) {
	clock := sched.NewManual()
	b := NewBackground(&countingSource{}, clock, 5*time.Second, nil)

	b.Start()
	b.RestartAfter(time.Second)
	b.CancelRestart()

	assert.True(t, b.Looping())
	assert.False(t, b.RestartPending())
	assert.Equal(t, 1, clock.Pending())
}

func TestBackground_NilSource(t *testing.T) {
	clock := sched.NewManual()
	b := NewBackground(nil, clock, time.Second, nil)

	assert.NotPanics(t, func() {
		b.Start()
		b.RestartAfter(time.Second)
		clock.Advance(2 * time.Second)
		b.Stop()
	})
	assert.False(t, b.Looping())
}

func TestBell(t *testing.T) {
	var out bytes.Buffer
	bell := NewBell(&out)

	bell.Play()
	bell.Play()
	assert.True(t, bell.Playing())
	assert.Equal(t, 2, bell.Rings())
	assert.Equal(t, "\a\a", out.String())

	bell.Stop()
	bell.Stop()
	assert.False(t, bell.Playing())
}
