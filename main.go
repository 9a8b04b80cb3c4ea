// go-jump is a one-button-per-step road runner for the terminal: cross a
// procedurally generated road by jumping one or two tiles at a time without
// landing in a gap.
//
// Usage:
//
//	go-jump                 - Play
//	go-jump scores          - Show the best runs per road length
//
// Flags:
//
//	--config <path>  - YAML config (default: ~/.config/go-jump/config.yaml, then built-in)
//	--length <n>     - Road length override
//	--seed <n>       - RNG seed override (0 = time based)
//	--no-audio       - Disable the background bell
//	--scores <path>  - Scores file (default: ~/.config/go-jump/scores.json)
//	--log <path>     - Write logs to a file
//	--debug          - Log state transitions
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-jump/internal/audio"
	"go-jump/internal/config"
	"go-jump/internal/game"
	"go-jump/internal/player"
	"go-jump/internal/road"
	"go-jump/internal/sched"
	"go-jump/internal/scoring"
	"go-jump/internal/tui"
)

var (
	flagConfig  string
	flagLength  int
	flagSeed    int64
	flagNoAudio bool
	flagScores  string
	flagLog     string
	flagDebug   bool
	flagTop     int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "go-jump",
	Short: "Jump along a generated road without falling into a gap",
	Long: `go-jump generates a road of solid tiles and single gaps. Jump one tile
(←, h or space) or two tiles (→ or l) at a time. Landing in a gap sends you back
to the start on a freshly generated road.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runPlay,
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs per road length",
	Args:  cobra.NoArgs,
	RunE:  runScores,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Path to the scores file")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config")
	rootCmd.Flags().IntVar(&flagLength, "length", 0, "Road length (overrides config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides config, 0 = time based)")
	rootCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable background audio")

	scoresCmd.Flags().IntVar(&flagTop, "top", 5, "Runs to show per road length")

	rootCmd.AddCommand(scoresCmd)
}

func newLogger() (*log.Logger, io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLog, err)
		}
		out, closer = f, f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "go-jump",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("length") {
		cfg.Road.Length = flagLength
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "length", cfg.Road.Length, "seed", seed, "audio", cfg.Audio.Enabled)

	// Scores are optional; the game runs without them.
	var recorder game.RunRecorder
	var best tui.BestLookup
	if scores, err := openScores(); err != nil {
		logger.Warn("scores unavailable", "err", err)
	} else {
		recorder, best = scores, scores
	}

	loop := sched.NewLoop()

	var src audio.Source
	var music tui.Music
	if cfg.Audio.Enabled {
		bell := audio.NewBell(os.Stderr)
		src, music = bell, bell
	}
	background := audio.NewBackground(src, loop, cfg.Timing.AudioInterval, logger)

	var tmpl *road.Template
	if cfg.Road.Template != "" {
		tmpl = &road.Template{Name: cfg.Road.Template}
	}

	pl := player.New(loop, cfg.Timing.JumpDuration)
	scene := tui.NewScene()
	hud := &tui.HUD{}

	ctrl := game.New(game.Options{
		RoadLength:        cfg.Road.Length,
		BlockY:            cfg.Road.BlockY,
		InputEnableDelay:  cfg.Timing.InputEnableDelay,
		AudioRestartDelay: cfg.Timing.AudioRestartDelay,
	}, game.Deps{
		Scene:     scene,
		Template:  tmpl,
		Player:    pl,
		UI:        hud,
		Audio:     background,
		Scheduler: loop,
		Rand:      rand.New(rand.NewSource(seed)),
		Recorder:  recorder,
		Logger:    logger,
	})

	model := tui.NewModel(tui.Options{
		Controller: ctrl,
		Player:     pl,
		Scene:      scene,
		HUD:        hud,
		Music:      music,
		Scores:     best,
		RoadLength: cfg.Road.Length,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	loop.Attach(tui.Post(p))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the game: %w", err)
	}
	logger.Info("bye")
	return nil
}

func openScores() (*scoring.Scoring, error) {
	storage, err := scoring.NewJSONFileStorage(flagScores)
	if err != nil {
		return nil, fmt.Errorf("failed to create score storage: %w", err)
	}
	return scoring.InitScoring(storage)
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagTop < 0 {
		return fmt.Errorf("--top must not be negative, got %d", flagTop)
	}
	scores, err := openScores()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lengths := scores.Lengths()
	if len(lengths) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	for _, length := range lengths {
		history := scores.History(length)
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Road length %d (%d runs)", length, history.Attempts)))
		for i, entry := range history.GetNScoreEntries(flagTop) {
			line := fmt.Sprintf("  %d. %3d steps  %-9s  %s", i+1, entry.Steps, entry.Outcome, entry.Timestamp)
			if entry.Outcome == scoring.OutcomeOvershoot {
				line = greenStyle.Render(line)
			} else if entry.Steps == 0 {
				line = redStyle.Render(line)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
