package game

import "fmt"

type Outcome int

const (
	None Outcome = iota
	Player1Won
	Player2Won
	Tie
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "None"
	case Player1Won:
		return "Player1Won"
	case Player2Won:
		return "Player2Won"
	case Tie:
		return "Tie"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is a finished game's outcome with the literal scores.
type Result struct {
	Outcome      Outcome
	Player1Score int
	Player2Score int
}

// Decide compares the final scores.
func Decide(player1Score, player2Score int) Outcome {
	switch {
	case player1Score > player2Score:
		return Player1Won
	case player1Score < player2Score:
		return Player2Won
	}
	return Tie
}

// String renders the winner's score first.
func (r Result) String() string {
	switch r.Outcome {
	case Player1Won:
		return fmt.Sprintf("Player1 won %d : %d", r.Player1Score, r.Player2Score)
	case Player2Won:
		return fmt.Sprintf("Player2 won %d : %d", r.Player2Score, r.Player1Score)
	case Tie:
		return fmt.Sprintf("Tie %d : %d", r.Player1Score, r.Player2Score)
	}
	return "in progress"
}
