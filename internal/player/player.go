// Package player implements the jumping player: single and double steps along
// the road, reported through a completion callback once each jump lands.
package player

import (
	"time"

	"go-jump/internal/sched"
)

const (
	StepShort = 1
	StepLong  = 2
)

// Player tracks the move index and the jump in flight.
type Player struct {
	sched        sched.Scheduler
	jumpDuration time.Duration

	inputActive bool
	jumping     bool
	falling     bool
	moveIndex   int
	position    int

	pending    sched.Timer
	onJumpEnd  func(moveIndex int)
	jumpsTaken int
}

// New returns a player at the origin with input disabled.
func New(s sched.Scheduler, jumpDuration time.Duration) *Player {
	return &Player{sched: s, jumpDuration: jumpDuration}
}

// OnJumpCompleted registers the single jump-completion listener.
func (p *Player) OnJumpCompleted(fn func(moveIndex int)) {
	p.onJumpEnd = fn
}

func (p *Player) SetInputActive(active bool) {
	p.inputActive = active
}

// ResetToOrigin puts the player back on tile 0.
func (p *Player) ResetToOrigin() {
	p.position = 0
}

// Reset clears the move index and drops a jump in flight.
func (p *Player) Reset() {
	sched.Cancel(p.pending)
	p.pending = nil
	p.jumping = false
	p.moveIndex = 0
}

func (p *Player) PlayFailureAnimation() {
	p.falling = true
}

func (p *Player) StopFailureAnimation() {
	p.falling = false
}

// Jump starts a jump of step tiles. It is ignored while input is disabled,
// while another jump is in flight, or for steps other than 1 and 2.
func (p *Player) Jump(step int) bool {
	if !p.inputActive || p.jumping {
		return false
	}
	if step != StepShort && step != StepLong {
		return false
	}
	p.jumping = true
	p.moveIndex += step
	p.jumpsTaken++
	target := p.moveIndex
	p.pending = p.sched.AfterFunc(p.jumpDuration, func() {
		p.pending = nil
		p.jumping = false
		p.position = target
		if p.onJumpEnd != nil {
			p.onJumpEnd(target)
		}
	})
	return true
}

// Position is the tile the player stands on.
func (p *Player) Position() int { return p.position }

// MoveIndex is the tile the current or last jump targets.
func (p *Player) MoveIndex() int { return p.moveIndex }

func (p *Player) Jumping() bool     { return p.jumping }
func (p *Player) Falling() bool     { return p.falling }
func (p *Player) InputActive() bool { return p.inputActive }
func (p *Player) JumpsTaken() int   { return p.jumpsTaken }
