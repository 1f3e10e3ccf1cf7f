package searcher

import "territory/game"

// Candidate is an Available tile found next to an owned tile.
type Candidate struct {
	Target int // Arena index of the Available tile
	Origin int // Arena index of the owned tile it was found from
}

type Searcher struct {
	random RandomSource
}

func New(random RandomSource) *Searcher {
	if random == nil {
		panic("searcher needs a random source")
	}
	return &Searcher{random: random}
}

// Frontier scans owned tiles in order and, for each, draws a random neighbour
// from the given ring as many times as the ring has tiles. Draws are with
// replacement, so an Available neighbour can be missed. The first Available
// neighbour drawn is returned along with the tile it was found from.
func (s *Searcher) Frontier(grid *game.Grid, owned []int, ring game.Ring) (Candidate, bool) {
	for _, origin := range owned {
		neighbours := grid.TileAt(origin).Ring(ring)
		for i := 0; i < len(neighbours); i++ {
			target := neighbours[s.random.Intn(len(neighbours))]
			if grid.TileAt(target).Owner == game.Available {
				return Candidate{Target: target, Origin: origin}, true
			}
		}
	}
	return Candidate{}, false
}

// CoinFlip returns true on heads, with probability one half.
func (s *Searcher) CoinFlip() bool {
	return s.random.Intn(2) == 0
}
