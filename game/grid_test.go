package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, size int) *Grid {
	t.Helper()
	g := NewGrid()
	require.NoError(t, g.Initialize(size))
	g.BuildAdjacency()
	return g
}

func ringCoordinates(g *Grid, c Coordinate, ring Ring) []Coordinate {
	coords := []Coordinate{}
	for _, i := range g.Tile(c).Ring(ring) {
		coords = append(coords, g.CoordinateOf(i))
	}
	return coords
}

func TestGridInitialize(t *testing.T) {
	t.Run("allocating available tiles", func(t *testing.T) {
		g := NewGrid()

		require.NoError(t, g.Initialize(4))

		require.Equal(t, 16, g.Len(), "Grid should hold size² tiles")
		require.Equal(t, 16, g.CountAvailable(), "All tiles should start available")
		require.Equal(t, Coordinate{X: 1, Y: 2}, g.TileAt(9).Position, "Tiles should be indexed by y*size+x")
	})

	t.Run("rejecting grids that are too small", func(t *testing.T) {
		for _, size := range []int{-3, 0, 1} {
			err := NewGrid().Initialize(size)
			require.ErrorIs(t, err, ErrInvalidGridSize, "Size %d should be rejected", size)
		}
	})

	t.Run("second initialization is a no-op", func(t *testing.T) {
		g := newTestGrid(t, 4)
		g.SetOwner(Coordinate{X: 1, Y: 1}, Player2)

		require.NoError(t, g.Initialize(7))

		require.Equal(t, 4, g.Size(), "Size should not change")
		require.Equal(t, 16, g.Len(), "Tile count should not change")
		require.Equal(t, Player2, g.OwnerOf(Coordinate{X: 1, Y: 1}), "Ownership should not change")
	})
}

func TestGridBuildAdjacency(t *testing.T) {
	g := newTestGrid(t, 4)

	t.Run("first ring sizes on a 4x4 grid", func(t *testing.T) {
		cases := map[Coordinate]int{
			{X: 0, Y: 0}: 3, {X: 3, Y: 0}: 3, {X: 0, Y: 3}: 3, {X: 3, Y: 3}: 3,
			{X: 1, Y: 0}: 5, {X: 0, Y: 2}: 5, {X: 3, Y: 1}: 5, {X: 2, Y: 3}: 5,
			{X: 1, Y: 1}: 8, {X: 2, Y: 1}: 8, {X: 1, Y: 2}: 8, {X: 2, Y: 2}: 8,
		}
		for c, want := range cases {
			require.Len(t, g.Tile(c).Ring(FirstRing), want, "First ring of %v", c)
		}
	})

	t.Run("second ring sizes on a 4x4 grid", func(t *testing.T) {
		cases := map[Coordinate]int{
			{X: 0, Y: 0}: 5, {X: 3, Y: 3}: 5,
			{X: 1, Y: 0}: 6, {X: 0, Y: 1}: 6,
			{X: 1, Y: 1}: 7, {X: 2, Y: 2}: 7,
		}
		for c, want := range cases {
			require.Len(t, g.Tile(c).Ring(SecondRing), want, "Second ring of %v", c)
		}
	})

	t.Run("ring scan order", func(t *testing.T) {
		require.Equal(t, []Coordinate{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, // left column
			{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, // right column
			{X: 1, Y: 2}, // top row
			{X: 1, Y: 0}, // bottom row
		}, ringCoordinates(g, Coordinate{X: 1, Y: 1}, FirstRing))

		require.Equal(t, []Coordinate{
			{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
			{X: 0, Y: 2}, {X: 1, Y: 2},
		}, ringCoordinates(g, Coordinate{X: 0, Y: 0}, SecondRing))
	})

	t.Run("rings are symmetric and exclude the tile itself", func(t *testing.T) {
		for i := 0; i < g.Len(); i++ {
			for _, ring := range []Ring{FirstRing, SecondRing} {
				for _, n := range g.TileAt(i).Ring(ring) {
					require.NotEqual(t, i, n, "Tile should not neighbour itself")
					require.Contains(t, g.TileAt(n).Ring(ring), i,
						"Ring %d should be symmetric between %v and %v", ring, g.CoordinateOf(i), g.CoordinateOf(n))
				}
			}
		}
	})

	t.Run("rings hold no duplicates", func(t *testing.T) {
		for i := 0; i < g.Len(); i++ {
			seen := map[int]bool{}
			for _, n := range g.TileAt(i).Ring(SecondRing) {
				require.False(t, seen[n], "Duplicate neighbour %v", g.CoordinateOf(n))
				seen[n] = true
			}
		}
	})

	t.Run("second ring is empty on a 2x2 grid", func(t *testing.T) {
		small := newTestGrid(t, 2)
		for i := 0; i < small.Len(); i++ {
			require.Empty(t, small.TileAt(i).Ring(SecondRing))
			require.Len(t, small.TileAt(i).Ring(FirstRing), 3)
		}
	})
}

func TestGridOwnership(t *testing.T) {
	t.Run("setting owners and scoring", func(t *testing.T) {
		g := newTestGrid(t, 3)

		previous := g.SetOwner(Coordinate{X: 0, Y: 0}, Player1)
		g.SetOwner(Coordinate{X: 1, Y: 0}, Player1)
		g.SetOwner(Coordinate{X: 2, Y: 2}, Player2)

		require.Equal(t, Available, previous, "Previous owner should be returned")
		require.Equal(t, 2, g.ScoreOf(Player1))
		require.Equal(t, 1, g.ScoreOf(Player2))
		require.Equal(t, 6, g.CountAvailable())
		require.Equal(t, Player2, g.Snapshot()[8])
	})

	t.Run("reset makes every tile available", func(t *testing.T) {
		g := newTestGrid(t, 3)
		g.SetOwner(Coordinate{X: 0, Y: 0}, Player1)
		g.SetOwner(Coordinate{X: 2, Y: 2}, Player2)

		g.Reset()

		require.Equal(t, 9, g.CountAvailable())
		require.Len(t, g.Tile(Coordinate{X: 1, Y: 1}).Ring(FirstRing), 8, "Adjacency should survive a reset")
	})

	t.Run("out of bounds coordinates panic", func(t *testing.T) {
		g := newTestGrid(t, 3)

		require.Panics(t, func() { g.OwnerOf(Coordinate{X: 3, Y: 0}) })
		require.Panics(t, func() { g.SetOwner(Coordinate{X: 0, Y: -1}, Player1) })
		require.Panics(t, func() { g.TileAt(9) })
	})
}
