package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jump/internal/sched"
)

const jump = 100 * time.Millisecond

func TestPlayer_InputDisabledByDefault(t *testing.T) {
	p := New(sched.NewManual(), jump)
	assert.False(t, p.Jump(StepShort))
	assert.Equal(t, 0, p.MoveIndex())
}

func TestPlayer_JumpCompletes(t *testing.T) {
	clock := sched.NewManual()
	p := New(clock, jump)
	var landed []int
	p.OnJumpCompleted(func(i int) { landed = append(landed, i) })
	p.SetInputActive(true)

	require.True(t, p.Jump(StepShort))
	assert.True(t, p.Jumping())
	assert.Equal(t, 0, p.Position())
	assert.Empty(t, landed)

	clock.Advance(jump)
	assert.False(t, p.Jumping())
	assert.Equal(t, 1, p.Position())
	assert.Equal(t, []int{1}, landed)

	require.True(t, p.Jump(StepLong))
	clock.Advance(jump)
	assert.Equal(t, []int{1, 3}, landed)
	assert.Equal(t, 2, p.JumpsTaken())
}

func TestPlayer_IgnoresJumpInFlight(t *testing.T) {
	clock := sched.NewManual()
	p := New(clock, jump)
	p.SetInputActive(true)

	require.True(t, p.Jump(StepShort))
	assert.False(t, p.Jump(StepLong))

	clock.Advance(jump)
	assert.Equal(t, 1, p.MoveIndex())
}

func TestPlayer_RejectsOtherSteps(t *testing.T) {
	p := New(sched.NewManual(), jump)
	p.SetInputActive(true)
	assert.False(t, p.Jump(0))
	assert.False(t, p.Jump(3))
	assert.False(t, p.Jump(-1))
}

func TestPlayer_ResetDropsJumpInFlight(t *testing.T) {
	clock := sched.NewManual()
	p := New(clock, jump)
	fired := false
	p.OnJumpCompleted(func(int) { fired = true })
	p.SetInputActive(true)

	p.Jump(StepLong)
	p.Reset()
	p.ResetToOrigin()
	clock.Advance(time.Second)

	assert.False(t, fired)
	assert.False(t, p.Jumping())
	assert.Equal(t, 0, p.MoveIndex())
	assert.Equal(t, 0, p.Position())
}

func TestPlayer_FailureAnimation(t *testing.T) {
	p := New(sched.NewManual(), jump)
	p.PlayFailureAnimation()
	assert.True(t, p.Falling())
	p.StopFailureAnimation()
	assert.False(t, p.Falling())
}

func TestPlayer_NoListener(t *testing.T) {
	clock := sched.NewManual()
	p := New(clock, jump)
	p.SetInputActive(true)
	p.Jump(StepShort)
	assert.NotPanics(t, func() { clock.Advance(jump) })
}
