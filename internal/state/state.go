package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
)

// GameState is the lifecycle state of one game session.
type GameState int

const (
	Init GameState = iota
	Playing
	Ended
)

// Effect names a side effect performed while entering a state.
type Effect string

const (
	EffectShowMenu       Effect = "show_menu"
	EffectHideMenu       Effect = "hide_menu"
	EffectGenerateRoad   Effect = "generate_road"
	EffectDisableInput   Effect = "disable_input"
	EffectResetPlayer    Effect = "reset_player"
	EffectResetSteps     Effect = "reset_steps"
	EffectEnableInput    Effect = "enable_input_deferred"
	EffectCancelRestart  Effect = "cancel_audio_restart"
	EffectCancelEnabling Effect = "cancel_input_enable"
)

// Handler performs the side effects of entering each state and reports them.
type Handler interface {
	EnterInit() []Effect
	EnterPlaying() []Effect
	EnterEnded() []Effect
}

// Machine holds the current GameState. The only way to change it is
// Transition, which always runs the target's enter effects.
type Machine struct {
	fsm     *fsm.FSM
	handler Handler
	effects []Effect
}

// NewMachine returns a Machine sitting in Init. No effects run until the
// first Transition.
func NewMachine(h Handler) *Machine {
	m := &Machine{handler: h}
	m.fsm = fsm.NewFSM(
		Init.String(),
		getStateTransitions(),
		getStateCallbacks(m),
	)
	return m
}

// Current returns the current state.
func (m *Machine) Current() GameState {
	s, _ := Parse(m.fsm.Current())
	return s
}

// Can reports whether target is reachable from the current state.
func (m *Machine) Can(target GameState) bool {
	event, ok := eventFor(target)
	return ok && m.fsm.Can(event)
}

// Transition moves to target and returns the effects performed on entry.
// Re-entering the current state is allowed and repeats its effects. Ended
// only leads back to Init; asking for Playing from there fails with
// fsm.InvalidEventError.
func (m *Machine) Transition(ctx context.Context, target GameState) ([]Effect, error) {
	event, ok := eventFor(target)
	if !ok {
		return nil, fmt.Errorf("unknown game state %d", int(target))
	}

	m.effects = nil
	err := m.fsm.Event(ctx, event)

	var same fsm.NoTransitionError
	if errors.As(err, &same) {
		// The fsm does not run enter callbacks for self transitions.
		m.enter(target)
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("transition to %s: %w", target, err)
	}
	return m.effects, nil
}

func (m *Machine) enter(s GameState) {
	if m.handler == nil {
		return
	}
	switch s {
	case Init:
		m.effects = m.handler.EnterInit()
	case Playing:
		m.effects = m.handler.EnterPlaying()
	case Ended:
		m.effects = m.handler.EnterEnded()
	}
}

func getStateTransitions() []fsm.EventDesc {
	all := []string{Init.String(), Playing.String(), Ended.String()}
	return fsm.Events{
		{Name: "reset", Src: all, Dst: Init.String()},
		{Name: "play", Src: []string{Init.String(), Playing.String()}, Dst: Playing.String()},
		{Name: "end", Src: all, Dst: Ended.String()},
	}
}

func getStateCallbacks(m *Machine) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			s, ok := Parse(e.Dst)
			if !ok {
				return
			}
			m.enter(s)
		},
	}
}
