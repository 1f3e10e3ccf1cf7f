package game

import "fmt"

// Grid owns every tile of a square board in a flat arena indexed by Coordinate.Index.
type Grid struct {
	size  int
	tiles []Tile
}

func NewGrid() *Grid {
	return &Grid{}
}

// Initialize allocates size×size Available tiles. Calling it on an already
// initialized grid is a no-op, so an active game's grid is never reallocated.
func (g *Grid) Initialize(size int) error {
	if g.tiles != nil {
		return nil
	}
	if err := ValidateSize(size); err != nil {
		return err
	}

	g.size = size
	g.tiles = make([]Tile, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := Coordinate{X: x, Y: y}
			g.tiles[c.Index(size)] = Tile{Position: c, Owner: Available}
		}
	}
	return nil
}

// Initialized reports whether Initialize has allocated the tiles.
func (g *Grid) Initialized() bool {
	return g.tiles != nil
}

// BuildAdjacency computes the first and second ring of every tile.
func (g *Grid) BuildAdjacency() {
	for i := range g.tiles {
		pos := g.tiles[i].Position
		g.tiles[i].adjacent = g.ringScan(pos, int(FirstRing))
		g.tiles[i].secondDegree = g.ringScan(pos, int(SecondRing))
	}
}

// ringScan walks the perimeter of the square of radius r around pos: the left
// column, the right column, the top row and then the bottom row. Cells outside
// the grid are skipped and corners shared by a column and a row are kept once.
func (g *Grid) ringScan(pos Coordinate, r int) []int {
	ring := []int{}
	seen := make(map[Coordinate]bool)
	add := func(c Coordinate) {
		if !c.Within(g.size) || seen[c] {
			return
		}
		seen[c] = true
		ring = append(ring, c.Index(g.size))
	}

	for y := pos.Y - r; y <= pos.Y+r; y++ {
		add(Coordinate{X: pos.X - r, Y: y})
	}
	for y := pos.Y - r; y <= pos.Y+r; y++ {
		add(Coordinate{X: pos.X + r, Y: y})
	}
	for x := pos.X - r; x <= pos.X+r; x++ {
		add(Coordinate{X: x, Y: pos.Y + r})
	}
	for x := pos.X - r; x <= pos.X+r; x++ {
		add(Coordinate{X: x, Y: pos.Y - r})
	}
	return ring
}

func (g *Grid) Size() int {
	return g.size
}

// Len is the number of tiles, size².
func (g *Grid) Len() int {
	return len(g.tiles)
}

// IndexOf returns the arena index of c. It panics when c is outside the grid,
// which can only happen through a bug in adjacency construction or a caller.
func (g *Grid) IndexOf(c Coordinate) int {
	if !c.Within(g.size) {
		panic(fmt.Sprintf("coordinate %v out of bounds for grid of size %d", c, g.size))
	}
	return c.Index(g.size)
}

func (g *Grid) CoordinateOf(index int) Coordinate {
	return g.TileAt(index).Position
}

func (g *Grid) Tile(c Coordinate) *Tile {
	return &g.tiles[g.IndexOf(c)]
}

func (g *Grid) TileAt(index int) *Tile {
	if index < 0 || index >= len(g.tiles) {
		panic(fmt.Sprintf("tile index %d out of bounds for grid of size %d", index, g.size))
	}
	return &g.tiles[index]
}

// SetOwner is the single mutation point for tile ownership. It returns the previous owner.
func (g *Grid) SetOwner(c Coordinate, owner PlayerType) PlayerType {
	tile := g.Tile(c)
	previous := tile.Owner
	tile.Owner = owner
	return previous
}

func (g *Grid) OwnerOf(c Coordinate) PlayerType {
	return g.Tile(c).Owner
}

// ScoreOf counts the tiles owned by player.
func (g *Grid) ScoreOf(player PlayerType) int {
	score := 0
	for i := range g.tiles {
		if g.tiles[i].Owner == player {
			score++
		}
	}
	return score
}

func (g *Grid) CountAvailable() int {
	return g.ScoreOf(Available)
}

// Snapshot copies the owner of every tile in arena order.
func (g *Grid) Snapshot() []PlayerType {
	owners := make([]PlayerType, len(g.tiles))
	for i := range g.tiles {
		owners[i] = g.tiles[i].Owner
	}
	return owners
}

// Reset sets every tile back to Available, keeping the adjacency.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.SetOwner(g.tiles[i].Position, Available)
	}
}
