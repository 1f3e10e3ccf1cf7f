package engine

import (
	"fmt"
	"time"

	"territory/experiments/metrics"
	"territory/game"
	"territory/searcher"

	"github.com/rs/zerolog/log"
)

// TickResult is what the presentation layer reads back after each Tick.
// Move is nil when the tick did not cross the move interval.
type TickResult struct {
	Player1Score int
	Player2Score int
	Ended        bool
	Outcome      game.Outcome
	Move         *game.Move
}

// Session owns one game's lifecycle. It is driven by a single caller and is
// not safe for concurrent use.
type Session struct {
	size     int
	interval time.Duration
	grid     *game.Grid
	turn     *TurnEngine
	random   searcher.RandomSource
	policy   Policy
	metrics  metrics.Collector
	elapsed  time.Duration
	ticks    int
	started  bool
	active   bool
	result   game.Result
}

func NewSession(size int, interval time.Duration, options ...Option) (*Session, error) {
	if err := game.ValidateSize(size); err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}

	s := &Session{
		size:     size,
		interval: interval,
		grid:     game.NewGrid(),
		policy:   Fallback,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.random == nil {
		s.random = searcher.NewRandom(defaultSeed())
	}
	return s, nil
}

// StartSession creates and starts a session.
func StartSession(size int, interval time.Duration, options ...Option) (*Session, error) {
	s, err := NewSession(size, interval, options...)
	if err != nil {
		return nil, err
	}
	if err := s.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start builds the grid, assigns the starting corners and gives Player1 the
// first turn. Starting an already started session changes nothing.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	if err := s.grid.Initialize(s.size); err != nil {
		return err
	}
	s.grid.BuildAdjacency()
	s.turn = NewTurnEngine(s.grid, s.random, s.policy)
	s.begin()
	s.started = true

	log.Info().Msgf("session started on a %dx%d grid with %s policy", s.size, s.size, s.policy)
	return nil
}

// Reset clears the board and starts a new game on the same grid.
func (s *Session) Reset() error {
	if !s.started {
		return s.Start()
	}
	s.grid.Reset()
	s.begin()

	log.Info().Msg("session reset")
	return nil
}

// Stop pauses the session between ticks. Reset makes it playable again.
func (s *Session) Stop() {
	s.active = false
}

func (s *Session) begin() {
	s.turn.ResetPlayers()
	s.assignCorners()
	s.elapsed = 0
	s.ticks = 0
	s.result = game.Result{}
	s.active = true
	s.metrics.Start(s.size)
}

// assignCorners gives each player two opposite corners.
func (s *Session) assignCorners() {
	last := s.size - 1
	s.turn.assign(game.Coordinate{X: 0, Y: 0}, game.Player1)
	s.turn.assign(game.Coordinate{X: last, Y: last}, game.Player1)
	s.turn.assign(game.Coordinate{X: last, Y: 0}, game.Player2)
	s.turn.assign(game.Coordinate{X: 0, Y: last}, game.Player2)
}

// Tick advances the session clock by dt. Each time the accumulated time
// reaches the move interval the clock restarts and exactly one move attempt
// runs, after which the game ends if no Available tile remains.
func (s *Session) Tick(dt time.Duration) TickResult {
	if !s.active {
		return s.tickResult(nil)
	}

	s.elapsed += dt
	if s.elapsed < s.interval {
		return s.tickResult(nil)
	}
	s.elapsed = 0
	s.ticks++

	move := s.turn.Attempt()
	player1Score, player2Score := s.Scores()
	s.metrics.AddMove(metrics.MoveMetric{
		Tick:         s.ticks,
		Player:       move.Player,
		Kind:         move.Kind,
		Target:       move.Target,
		Origin:       move.Origin,
		Conversions:  len(move.Converted),
		Player1Score: player1Score,
		Player2Score: player2Score,
	})
	log.Debug().
		Int("tick", s.ticks).
		Stringer("player", move.Player).
		Stringer("kind", move.Kind).
		Stringer("target", move.Target).
		Int("converted", len(move.Converted)).
		Int("player1", player1Score).
		Int("player2", player2Score).
		Msg("move attempt")

	if player1Score+player2Score == s.grid.Len() {
		s.active = false
		s.result = game.Result{
			Outcome:      game.Decide(player1Score, player2Score),
			Player1Score: player1Score,
			Player2Score: player2Score,
		}
		log.Info().Msgf("game over after %d moves: %s", s.ticks, s.result)
	}

	return s.tickResult(&move)
}

func (s *Session) tickResult(move *game.Move) TickResult {
	player1Score, player2Score := s.Scores()
	return TickResult{
		Player1Score: player1Score,
		Player2Score: player2Score,
		Ended:        s.Ended(),
		Outcome:      s.result.Outcome,
		Move:         move,
	}
}

// Scores recounts both players' tiles from the grid.
func (s *Session) Scores() (int, int) {
	return s.grid.ScoreOf(game.Player1), s.grid.ScoreOf(game.Player2)
}

func (s *Session) OwnerOf(c game.Coordinate) game.PlayerType {
	return s.grid.OwnerOf(c)
}

// Snapshot copies every tile's owner, indexed by y*size+x.
func (s *Session) Snapshot() []game.PlayerType {
	return s.grid.Snapshot()
}

func (s *Session) Size() int {
	return s.size
}

func (s *Session) Interval() time.Duration {
	return s.interval
}

func (s *Session) Active() bool {
	return s.active
}

// Ended reports whether the game finished because no Available tile remained.
func (s *Session) Ended() bool {
	return s.result.Outcome != game.None
}

func (s *Session) Result() game.Result {
	return s.result
}

// Ticks counts the move attempts of the current game.
func (s *Session) Ticks() int {
	return s.ticks
}

func (s *Session) Turn() game.PlayerType {
	if s.turn == nil {
		return game.Player1
	}
	return s.turn.Active()
}

func (s *Session) Policy() Policy {
	return s.policy
}
