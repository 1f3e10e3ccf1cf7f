package game

import (
	"errors"
	"fmt"
)

// MinGridSize is the smallest grid on which the four starting corners are distinct tiles.
const MinGridSize = 2

var ErrInvalidGridSize = errors.New("invalid grid size")

// PlayerType identifies the owner of a tile. Available marks an unowned tile.
type PlayerType int

const (
	Available PlayerType = iota
	Player1
	Player2
)

// Players lists the two sides in turn order.
var Players = []PlayerType{Player1, Player2}

func (p PlayerType) String() string {
	switch p {
	case Available:
		return "Available"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return fmt.Sprintf("PlayerType(%d)", int(p))
}

// Opponent returns the other side. Available has no opponent.
func (p PlayerType) Opponent() PlayerType {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	panic(fmt.Sprintf("no opponent for %v", p))
}

// Ring selects a neighbourhood of a tile by Chebyshev distance.
type Ring int

const (
	FirstRing  Ring = 1
	SecondRing Ring = 2
)

// ValidateSize rejects grids too small to hold four distinct starting corners.
func ValidateSize(size int) error {
	if size < MinGridSize {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidGridSize, size, MinGridSize)
	}
	return nil
}
