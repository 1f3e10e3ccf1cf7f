package game

import "fmt"

// MoveKind is what a move attempt did.
type MoveKind int

const (
	Skip   MoveKind = iota // No tile was claimed
	Expand                 // A first ring tile was claimed
	Leap                   // A second ring tile was claimed and the origin vacated
)

func (k MoveKind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Expand:
		return "expand"
	case Leap:
		return "leap"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Move records the effect of one move attempt. Target and Origin are only
// meaningful when Kind is not Skip.
type Move struct {
	Player    PlayerType
	Kind      MoveKind
	Target    Coordinate
	Origin    Coordinate
	Converted []Coordinate
}
