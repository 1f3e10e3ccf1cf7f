package game

import "fmt"

// Coordinate is a tile position. It is a comparable value and can be used as a map key.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Index maps c into a flat arena of a size×size grid.
func (c Coordinate) Index(size int) int {
	return c.Y*size + c.X
}

// Within reports whether c lies in [0,size) on both axes.
func (c Coordinate) Within(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Tile is a single cell. Ring slices hold arena indices and never change after BuildAdjacency.
type Tile struct {
	Position     Coordinate
	Owner        PlayerType
	adjacent     []int
	secondDegree []int
}

// Ring returns the arena indices of the tile's neighbours at the given distance,
// in scan order. Callers must not modify the returned slice.
func (t *Tile) Ring(ring Ring) []int {
	switch ring {
	case FirstRing:
		return t.adjacent
	case SecondRing:
		return t.secondDegree
	}
	panic(fmt.Sprintf("unsupported ring %d", ring))
}
