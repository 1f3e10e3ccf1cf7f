package game

import "territory/utils"

// Player tracks the tiles one side currently controls, by arena index.
// The set iterates in claim order so that searches over it are reproducible.
type Player struct {
	Type  PlayerType
	order []int
	owned map[int]struct{}
}

func NewPlayer(t PlayerType) *Player {
	return &Player{
		Type:  t,
		order: []int{},
		owned: make(map[int]struct{}),
	}
}

// Claim adds a tile to the set. Claiming an owned tile is a no-op and returns false.
func (p *Player) Claim(index int) bool {
	if p.Owns(index) {
		return false
	}
	p.owned[index] = struct{}{}
	p.order = append(p.order, index)
	return true
}

// Release removes a tile from the set. Releasing an absent tile is a no-op and returns false.
func (p *Player) Release(index int) bool {
	if !p.Owns(index) {
		return false
	}
	delete(p.owned, index)
	p.order, _ = utils.Remove(p.order, index)
	return true
}

func (p *Player) Owns(index int) bool {
	_, ok := p.owned[index]
	return ok
}

func (p *Player) Len() int {
	return len(p.order)
}

// Tiles returns a copy of the owned indices in iteration order.
func (p *Player) Tiles() []int {
	tiles := make([]int, len(p.order))
	copy(tiles, p.order)
	return tiles
}
