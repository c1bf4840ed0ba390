package game

// StateType represents the current game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateWin         StateType = "win"
	StateLose        StateType = "lose"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Turns   int
	Score   int
	Cells   Cells
	MaxTile Tile
	State   StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.outcome.Win:
		state = StateWin
	case g.outcome.Lose:
		state = StateLose
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Turns:   g.turns,
		Score:   g.score,
		Cells:   g.Cells(),
		MaxTile: g.MaxTile(),
		State:   state,
	}
}
