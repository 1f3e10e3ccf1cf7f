package engine

import (
	"territory/game"
	"territory/searcher"
)

// TurnEngine resolves one move attempt at a time for alternating players.
// It is the only code that changes tile ownership, and keeps each Player's
// owned set in lockstep with the grid.
type TurnEngine struct {
	grid     *game.Grid
	players  map[game.PlayerType]*game.Player
	searcher *searcher.Searcher
	policy   Policy
	active   game.PlayerType
	phase    Phase
}

func NewTurnEngine(grid *game.Grid, random searcher.RandomSource, policy Policy) *TurnEngine {
	t := &TurnEngine{
		grid:     grid,
		searcher: searcher.New(random),
		policy:   policy,
	}
	t.ResetPlayers()
	return t
}

// ResetPlayers creates empty players and gives Player1 the turn.
func (t *TurnEngine) ResetPlayers() {
	t.players = make(map[game.PlayerType]*game.Player, len(game.Players))
	for _, p := range game.Players {
		t.players[p] = game.NewPlayer(p)
	}
	t.active = game.Player1
	t.phase = Idle
}

func (t *TurnEngine) Active() game.PlayerType {
	return t.active
}

func (t *TurnEngine) Phase() Phase {
	return t.phase
}

func (t *TurnEngine) Player(p game.PlayerType) *game.Player {
	return t.players[p]
}

// Attempt runs one move attempt for the active player and then passes the
// turn, whether or not a tile was claimed.
func (t *TurnEngine) Attempt() game.Move {
	mover := t.active

	t.phase = SelectingMove
	owned := t.players[mover].Tiles()
	primary, hasPrimary := t.searcher.Frontier(t.grid, owned, game.FirstRing)
	secondary, hasSecondary := t.searcher.Frontier(t.grid, owned, game.SecondRing)
	kind, candidate := t.choose(primary, hasPrimary, secondary, hasSecondary)

	move := game.Move{Player: mover, Kind: kind}
	if kind != game.Skip {
		t.phase = Resolving
		move = t.resolve(mover, kind, candidate)
	}

	t.phase = SwitchingTurn
	t.active = mover.Opponent()
	t.phase = Idle
	return move
}

func (t *TurnEngine) choose(primary searcher.Candidate, hasPrimary bool, secondary searcher.Candidate, hasSecondary bool) (game.MoveKind, searcher.Candidate) {
	switch {
	case hasPrimary && hasSecondary:
		if t.searcher.CoinFlip() {
			return game.Expand, primary
		}
		return game.Leap, secondary
	case t.policy == RequireBoth:
		return game.Skip, searcher.Candidate{}
	case hasPrimary:
		return game.Expand, primary
	case hasSecondary:
		return game.Leap, secondary
	}
	return game.Skip, searcher.Candidate{}
}

func (t *TurnEngine) resolve(mover game.PlayerType, kind game.MoveKind, candidate searcher.Candidate) game.Move {
	target := t.grid.CoordinateOf(candidate.Target)
	origin := t.grid.CoordinateOf(candidate.Origin)

	t.assign(target, mover)
	converted := t.convert(mover, candidate.Target)
	if kind == game.Leap {
		t.assign(origin, game.Available)
	}

	return game.Move{
		Player:    mover,
		Kind:      kind,
		Target:    target,
		Origin:    origin,
		Converted: converted,
	}
}

// convert flips every opponent tile in the first ring of the claimed tile.
// Flipped tiles do not convert their own neighbours.
func (t *TurnEngine) convert(mover game.PlayerType, claimed int) []game.Coordinate {
	converted := []game.Coordinate{}
	for _, n := range t.grid.TileAt(claimed).Ring(game.FirstRing) {
		tile := t.grid.TileAt(n)
		if tile.Owner != mover && tile.Owner != game.Available {
			converted = append(converted, tile.Position)
		}
	}
	for _, c := range converted {
		t.assign(c, mover)
	}
	return converted
}

// assign sets the owner of c and moves the tile between the players' sets.
func (t *TurnEngine) assign(c game.Coordinate, owner game.PlayerType) {
	previous := t.grid.SetOwner(c, owner)
	index := t.grid.IndexOf(c)
	if previous != game.Available {
		t.players[previous].Release(index)
	}
	if owner != game.Available {
		t.players[owner].Claim(index)
	}
}
