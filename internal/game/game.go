// Package game implements the 2048 sliding-tile puzzle: the line
// compaction-merge engine, the 4x4 grid controller and the turn loop.
package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// ID is the identifier used for score storage.
const ID = "2048"

// ErrGameOver is returned by Turn once the outcome is terminal.
var ErrGameOver = errors.New("game: game is over")

// TurnResult reports one completed turn.
type TurnResult struct {
	Move    MoveResult
	Spawn   Spawn
	Spawned bool
	Outcome Outcome
}

// Game sequences initialize, then move, spawn and outcome check per turn.
type Game struct {
	cfg  config.GameConfig
	grid *Grid
	tick uint64

	turns   int
	score   int
	outcome Outcome
	last    TurnResult

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game with the given configuration. Call Reset before playing.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

func (g *Game) rules() Rules {
	return Rules{
		WinTile:      Tile(g.cfg.Rules.WinTile),
		Spawn4:       g.cfg.Rules.Spawn4,
		InitialTiles: g.cfg.Rules.InitialTiles,
	}
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.grid = NewGrid(rand.New(rand.NewSource(cfg.Seed)), g.rules())
	g.grid.Initialize()

	g.tick = 0
	g.turns = 0
	g.score = 0
	g.last = TurnResult{}
	g.paused = false
	g.outcome = g.grid.Outcome()

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Load replaces the board, keeping score and turn count. Used for puzzles and tests.
func (g *Game) Load(cells Cells) {
	if g.grid == nil {
		g.grid = NewGrid(nil, g.rules())
	}
	g.grid.Load(cells)
	g.outcome = g.grid.Outcome()
}

// Turn applies one direction: move, spawn, then recompute the outcome.
// With spawn_on_noop off, a move that changed nothing spawns no tile.
func (g *Game) Turn(dir Direction) (TurnResult, error) {
	if g.outcome.Terminal() {
		return TurnResult{Outcome: g.outcome}, ErrGameOver
	}
	if !dir.Valid() {
		return TurnResult{Outcome: g.outcome}, ErrInvalidDirection
	}

	res := TurnResult{Move: g.grid.Move(dir)}
	g.score += res.Move.Points

	if res.Move.Changed || g.cfg.Rules.SpawnOnNoop {
		res.Spawn, res.Spawned = g.grid.SpawnTile()
	}

	g.turns++
	g.outcome = g.grid.Outcome()
	res.Outcome = g.outcome
	g.last = res
	return res, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.outcome.Terminal() {
		g.paused = !g.paused
	}

	if g.paused || g.outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}

	// First direction wins when several keys arrive in one tick.
	for _, a := range in.Actions() {
		if !a.IsMove() {
			continue
		}
		dir, _ := DirectionFromAction(a)
		res, err := g.Turn(dir)
		moved := err == nil && res.Move.Changed
		return core.StepResult{State: g.State(), Moved: moved}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  int(g.MaxTile()),
		Turns:    g.turns,
		Won:      g.outcome.Win,
		Lost:     g.outcome.Lose,
		GameOver: g.outcome.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Outcome returns the outcome as of the last turn.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Cells returns a copy of the board.
func (g *Game) Cells() Cells {
	if g.grid == nil {
		return Cells{}
	}
	return g.grid.Cells()
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() Tile {
	if g.grid == nil {
		return Empty
	}
	return g.grid.MaxTile()
}

// Score returns the sum of all merge results so far.
func (g *Game) Score() int {
	return g.score
}

// Turns returns the number of completed turns.
func (g *Game) Turns() int {
	return g.turns
}

// LastTurn returns the result of the most recent turn.
func (g *Game) LastTurn() TurnResult {
	return g.last
}
