package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"go-jump/internal/audio"
	"go-jump/internal/road"
	"go-jump/internal/sched"
	"go-jump/internal/scoring"
	"go-jump/internal/state"
)

// Player is the jumping player as seen by the controller.
type Player interface {
	SetInputActive(active bool)
	ResetToOrigin()
	Reset()
	PlayFailureAnimation()
	StopFailureAnimation()
	OnJumpCompleted(fn func(moveIndex int))
}

// UI is the start menu and step label.
type UI interface {
	SetMenuVisible(visible bool)
	SetStepLabel(text string)
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	Record(length, steps int, outcome scoring.Outcome) error
}

// Verdict is the result of checking a landed move.
type Verdict int

const (
	Continue Verdict = iota // landed on solid ground
	Fell                    // landed in a gap
	Overshot                // jumped past the end of the road
)

func (v Verdict) String() string {
	switch v {
	case Continue:
		return "continue"
	case Fell:
		return "fell"
	case Overshot:
		return "overshot"
	default:
		return "unknown"
	}
}

// Options are fixed for the lifetime of a Controller.
type Options struct {
	RoadLength        int
	BlockY            float64
	InputEnableDelay  time.Duration
	AudioRestartDelay time.Duration
}

// Deps are the collaborators. Every one except Scheduler and Rand may be nil;
// the matching side effect is then skipped.
type Deps struct {
	Scene     road.Scene
	Template  *road.Template
	Player    Player
	UI        UI
	Audio     *audio.Background
	Scheduler sched.Scheduler
	Rand      road.Rand
	Recorder  RunRecorder
	Logger    *log.Logger
}

// Controller owns one game session: the road, the lifecycle state and the
// pending timers. All methods must be called from the event loop.
type Controller struct {
	opts    Options
	machine *state.Machine
	builder *road.Builder
	road    road.Road

	player   Player
	ui       UI
	audio    *audio.Background
	sched    sched.Scheduler
	recorder RunRecorder
	logger   *log.Logger

	enableInput sched.Timer
	furthest    int
	started     bool
}

// New returns a Controller in Init. Call Start to enter Init and begin the session.
func New(opts Options, deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		opts:     opts,
		builder:  road.NewBuilder(deps.Scene, deps.Template, deps.Rand, opts.BlockY, logger),
		player:   deps.Player,
		ui:       deps.UI,
		audio:    deps.Audio,
		sched:    deps.Scheduler,
		recorder: deps.Recorder,
		logger:   logger,
	}
	c.machine = state.NewMachine(c)
	return c
}

// Start enters Init, subscribes to the player's jump events and starts the
// background audio. Later calls are no-ops.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.transition(state.Init)
	if c.player != nil {
		c.player.OnJumpCompleted(c.OnJumpCompleted)
	}
	if c.audio != nil {
		c.audio.Start()
	}
}

// StartPlaying is the start button: it silences the menu music, ends the fall
// animation and enters Playing.
func (c *Controller) StartPlaying() {
	if !c.machine.Can(state.Playing) {
		c.logger.Warn("cannot start playing", "from", c.machine.Current())
		return
	}
	if c.audio != nil {
		c.audio.Stop()
	}
	if c.player != nil {
		c.player.StopFailureAnimation()
	}
	c.transition(state.Playing)
}

// End enters Ended.
func (c *Controller) End() {
	c.transition(state.Ended)
}

// Reset returns to the start menu on a fresh road. It is the only way out of Ended.
func (c *Controller) Reset() {
	c.transition(state.Init)
}

// Close stops audio and drops pending timers.
func (c *Controller) Close() {
	sched.Cancel(c.enableInput)
	c.enableInput = nil
	if c.audio != nil {
		c.audio.Stop()
	}
}

// OnJumpCompleted handles the player's jump event.
func (c *Controller) OnJumpCompleted(moveIndex int) {
	if c.ui != nil {
		c.ui.SetStepLabel(StepLabel(moveIndex))
	}
	c.CheckResult(moveIndex)
}

// CheckResult decides the outcome of a move that landed on moveIndex.
//
// The bound check is inclusive: moveIndex == RoadLength counts as inside the
// road even though the last generated tile is RoadLength-1. That index is not
// a gap, so the run continues and the next jump overshoots.
func (c *Controller) CheckResult(moveIndex int) Verdict {
	if moveIndex <= c.opts.RoadLength {
		if !c.road.IsGap(moveIndex) {
			if moveIndex > c.furthest {
				c.furthest = moveIndex
			}
			return Continue
		}
		c.logger.Info("player fell", "index", moveIndex, "furthest", c.furthest)
		c.record(scoring.OutcomeFell)
		c.transition(state.Init)
		if c.player != nil {
			c.player.PlayFailureAnimation()
		}
		if c.audio != nil {
			c.audio.RestartAfter(c.opts.AudioRestartDelay)
		}
		return Fell
	}

	c.logger.Info("player overshot the road", "index", moveIndex, "length", c.opts.RoadLength)
	c.furthest = c.opts.RoadLength
	c.record(scoring.OutcomeOvershoot)
	c.transition(state.Init)
	return Overshot
}

// EnterInit shows the menu, regenerates the road and parks the player.
func (c *Controller) EnterInit() []state.Effect {
	var effects []state.Effect

	sched.Cancel(c.enableInput)
	c.enableInput = nil
	effects = append(effects, state.EffectCancelEnabling)

	if c.audio != nil {
		c.audio.CancelRestart()
		effects = append(effects, state.EffectCancelRestart)
	}

	if c.ui != nil {
		c.ui.SetMenuVisible(true)
		effects = append(effects, state.EffectShowMenu)
	}

	c.road = c.builder.Build(c.opts.RoadLength)
	c.furthest = 0
	effects = append(effects, state.EffectGenerateRoad)

	if c.player != nil {
		c.player.SetInputActive(false)
		c.player.ResetToOrigin()
		c.player.Reset()
		effects = append(effects, state.EffectDisableInput, state.EffectResetPlayer)
	}
	return effects
}

// EnterPlaying hides the menu, zeroes the step label and re-enables input on
// the next turn of the loop.
func (c *Controller) EnterPlaying() []state.Effect {
	var effects []state.Effect

	if c.ui != nil {
		c.ui.SetMenuVisible(false)
		c.ui.SetStepLabel(StepLabel(0))
		effects = append(effects, state.EffectHideMenu, state.EffectResetSteps)
	}

	if c.player != nil {
		sched.Cancel(c.enableInput)
		c.enableInput = c.sched.AfterFunc(c.opts.InputEnableDelay, func() {
			c.enableInput = nil
			c.player.SetInputActive(true)
		})
		effects = append(effects, state.EffectEnableInput)
	}
	return effects
}

// EnterEnded has no side effects.
func (c *Controller) EnterEnded() []state.Effect {
	return nil
}

func (c *Controller) transition(target state.GameState) {
	from := c.machine.Current()
	effects, err := c.machine.Transition(context.Background(), target)
	if err != nil {
		c.logger.Error("state transition failed", "from", from, "to", target, "err", err)
		return
	}
	c.logger.Debug("state transition", "from", from, "to", target, "effects", state.Names(effects))
}

func (c *Controller) record(outcome scoring.Outcome) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(c.opts.RoadLength, c.furthest, outcome); err != nil {
		c.logger.Warn("could not record run", "err", err)
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() state.GameState {
	return c.machine.Current()
}

// Road returns the current road. Callers must not modify it.
func (c *Controller) Road() road.Road {
	return c.road
}

// Furthest is the furthest solid tile reached in the current run.
func (c *Controller) Furthest() int {
	return c.furthest
}

// InputPending reports whether a deferred input enable is armed.
func (c *Controller) InputPending() bool {
	return c.enableInput != nil
}

// StepLabel formats the step counter text.
func StepLabel(steps int) string {
	return fmt.Sprintf("Steps: %d", steps)
}
