package engine

import (
	"testing"

	"territory/game"
	"territory/searcher"

	"github.com/stretchr/testify/require"
)

// scriptedRandom replays draws in order, reducing each modulo n.
type scriptedRandom struct {
	draws []int
	calls int
}

func (r *scriptedRandom) Intn(n int) int {
	draw := r.draws[r.calls%len(r.draws)]
	r.calls++
	return draw % n
}

// fixedRandom always draws the same value modulo n.
type fixedRandom int

func (r fixedRandom) Intn(n int) int {
	return int(r) % n
}

func newTestTurnEngine(t *testing.T, size int, random searcher.RandomSource, policy Policy) *TurnEngine {
	t.Helper()
	grid := game.NewGrid()
	require.NoError(t, grid.Initialize(size))
	grid.BuildAdjacency()
	return NewTurnEngine(grid, random, policy)
}

func at(x, y int) game.Coordinate {
	return game.Coordinate{X: x, Y: y}
}

func coordinatesOf(turn *TurnEngine, p game.PlayerType) []game.Coordinate {
	coords := []game.Coordinate{}
	for _, i := range turn.Player(p).Tiles() {
		coords = append(coords, turn.grid.CoordinateOf(i))
	}
	return coords
}

// requireLockstep checks that every player's owned set mirrors the grid.
func requireLockstep(t *testing.T, turn *TurnEngine) {
	t.Helper()
	for _, p := range game.Players {
		require.Equal(t, turn.grid.ScoreOf(p), turn.Player(p).Len(), "%v's set should match the grid", p)
		for _, i := range turn.Player(p).Tiles() {
			require.Equal(t, p, turn.grid.TileAt(i).Owner, "%v's set holds a tile it does not own", p)
		}
	}
}
