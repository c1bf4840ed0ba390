package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL  - Slide
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Save a text screenshot to ~/.t2048/screenshots
  ?                 - More help
  Q/Ctrl+C          - Quit

With --plain (or when stdout is not a terminal) the game runs as a line
prompt: type U, D, L or R and press Enter each turn.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --plain
  t2048 play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-mode play on stdin/stdout")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     seed,
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	g := game.New(cfg)

	if !flagPlain && tty {
		if err := tui.Run(g, store, rc, cfg.Display.Color); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Reset(rc)
	opts := console.Options{
		Color: cfg.Display.Color && tty,
		Intro: true,
	}
	outcome, runErr := console.Run(ctx, os.Stdin, os.Stdout, g, opts)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	saveConsoleResult(store, g, outcome)
	return runErr
}

// saveConsoleResult records a finished or abandoned line-mode game.
func saveConsoleResult(store *storage.Store, g *game.Game, outcome game.Outcome) {
	if store == nil || g.Turns() == 0 {
		return
	}

	result := storage.Result{
		GameID:  g.ID(),
		Score:   g.Score(),
		MaxTile: int(g.MaxTile()),
		Turns:   g.Turns(),
		Outcome: storage.OutcomeAbandoned,
	}
	switch {
	case outcome.Win:
		result.Outcome = storage.OutcomeWin
	case outcome.Lose:
		result.Outcome = storage.OutcomeLose
	}

	if _, err := store.SaveResult(result); err != nil {
		logger.Warn("could not save score", "error", err)
	}
}
