package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Size is the board dimension.
const Size = LineLen

// DefaultWinTile is the tile value that wins the game.
const DefaultWinTile Tile = 2048

// ErrGridFull is returned by SpawnTileStrict when no empty cell exists.
var ErrGridFull = errors.New("game: no empty cell to spawn into")

// Cells is a copy of the board, indexed [row][col].
type Cells [Size][Size]Tile

// Pos is a cell coordinate.
type Pos struct {
	Row, Col int
}

// Rules controls spawning and the win condition.
type Rules struct {
	WinTile      Tile    // Tile value that ends the game as a win
	Spawn4       float64 // Probability that a spawned tile is 4 instead of 2
	InitialTiles int     // Number of 2 tiles placed by Initialize
}

// DefaultRules returns the classic rules: win at 2048, 1 in 10 spawns is a 4,
// two starting tiles.
func DefaultRules() Rules {
	return Rules{
		WinTile:      DefaultWinTile,
		Spawn4:       0.10,
		InitialTiles: 2,
	}
}

// MoveResult reports the effect of one Move.
type MoveResult struct {
	Changed bool // At least one tile moved or merged
	Merges  int
	Points  int
}

// Spawn describes a tile placed by SpawnTile.
type Spawn struct {
	Pos   Pos
	Value Tile
}

// Outcome is derived from the board on every call; it is never stored.
type Outcome struct {
	Win  bool // Some cell holds the win tile
	Lose bool // All cells occupied and no win tile
}

// Terminal reports whether the game has ended.
func (o Outcome) Terminal() bool {
	return o.Win || o.Lose
}

// Grid owns the 4x4 board. It is not safe for concurrent use.
type Grid struct {
	cells Cells
	rng   *rand.Rand
	rules Rules
}

// NewGrid creates an empty grid. A nil rng is replaced by a time-seeded one.
func NewGrid(rng *rand.Rand, rules Rules) *Grid {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if rules.WinTile == Empty {
		rules.WinTile = DefaultWinTile
	}
	rules.InitialTiles = core.Clamp(rules.InitialTiles, 0, Size*Size)
	return &Grid{rng: rng, rules: rules}
}

// Rules returns the grid's rules.
func (g *Grid) Rules() Rules {
	return g.rules
}

// Initialize clears the board and places the initial 2 tiles at distinct
// uniformly chosen cells. Occupied picks are redrawn.
func (g *Grid) Initialize() {
	g.cells = Cells{}

	placed := 0
	for placed < g.rules.InitialTiles {
		row, col := g.rng.Intn(Size), g.rng.Intn(Size)
		if g.cells[row][col] != Empty {
			continue
		}
		g.cells[row][col] = 2
		placed++
	}
}

// Load replaces the board contents.
func (g *Grid) Load(cells Cells) {
	g.cells = cells
}

// Set writes a single cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, v Tile) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return
	}
	g.cells[row][col] = v
}

// Cells returns a copy of the board.
func (g *Grid) Cells() Cells {
	return g.cells
}

// At returns the tile at (row, col), or Empty when out of range.
func (g *Grid) At(row, col int) Tile {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Empty
	}
	return g.cells[row][col]
}

// linePositions returns the cells of line i in direction-of-travel order,
// nearest to the target edge first.
func linePositions(dir Direction, i int) [LineLen]Pos {
	var pos [LineLen]Pos
	for k := range LineLen {
		switch dir {
		case DirLeft:
			pos[k] = Pos{Row: i, Col: k}
		case DirRight:
			pos[k] = Pos{Row: i, Col: Size - 1 - k}
		case DirUp:
			pos[k] = Pos{Row: k, Col: i}
		case DirDown:
			pos[k] = Pos{Row: Size - 1 - k, Col: i}
		}
	}
	return pos
}

// Move slides every row or column toward dir and merges equal neighbours.
// It does not spawn tiles or evaluate the outcome.
func (g *Grid) Move(dir Direction) MoveResult {
	var res MoveResult
	if !dir.Valid() {
		return res
	}

	for i := range Size {
		positions := linePositions(dir, i)

		var line Line
		for k, p := range positions {
			line[k] = g.cells[p.Row][p.Col]
		}

		collapsed, stats := Collapse(line)
		if collapsed != line {
			res.Changed = true
		}
		res.Merges += stats.Merges
		res.Points += stats.Points

		for k, p := range positions {
			g.cells[p.Row][p.Col] = collapsed[k]
		}
	}

	return res
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Pos {
	var cells []Pos
	for row := range Size {
		for col := range Size {
			if g.cells[row][col] == Empty {
				cells = append(cells, Pos{Row: row, Col: col})
			}
		}
	}
	return cells
}

// SpawnTile places a 2 (or a 4 with probability Rules.Spawn4) in a uniformly
// chosen empty cell. On a full board it does nothing and returns false.
func (g *Grid) SpawnTile() (Spawn, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Spawn{}, false
	}

	pos := empty[g.rng.Intn(len(empty))]

	value := Tile(2)
	if g.rng.Float64() < g.rules.Spawn4 {
		value = 4
	}

	g.cells[pos.Row][pos.Col] = value
	return Spawn{Pos: pos, Value: value}, true
}

// SpawnTileStrict is SpawnTile that reports a full board as ErrGridFull.
func (g *Grid) SpawnTileStrict() (Spawn, error) {
	s, ok := g.SpawnTile()
	if !ok {
		return Spawn{}, ErrGridFull
	}
	return s, nil
}

// Outcome scans the board once. A cell equal to the win tile is a win; the
// board is lost only when every cell is occupied and there is no win.
func (g *Grid) Outcome() Outcome {
	occupied := 0
	win := false
	for row := range Size {
		for col := range Size {
			v := g.cells[row][col]
			if v == Empty {
				continue
			}
			occupied++
			if v == g.rules.WinTile {
				win = true
			}
		}
	}

	return Outcome{
		Win:  win,
		Lose: !win && occupied == Size*Size,
	}
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	return Size*Size - len(g.EmptyCells())
}

// Sum returns the total of all tile values.
func (g *Grid) Sum() int {
	total := 0
	for row := range Size {
		for col := range Size {
			total += int(g.cells[row][col])
		}
	}
	return total
}

// MaxTile returns the highest tile on the board.
func (g *Grid) MaxTile() Tile {
	var maxVal Tile
	for row := range Size {
		for col := range Size {
			maxVal = max(maxVal, g.cells[row][col])
		}
	}
	return maxVal
}

// CanMove reports whether any direction would change the board.
func (g *Grid) CanMove() bool {
	for row := range Size {
		for col := range Size {
			v := g.cells[row][col]
			if v == Empty {
				return true
			}
			if col < Size-1 && g.cells[row][col+1] == v {
				return true
			}
			if row < Size-1 && g.cells[row+1][col] == v {
				return true
			}
		}
	}
	return false
}
