package engine

import (
	"errors"
	"fmt"
	"time"

	"territory/experiments/metrics"
	"territory/searcher"
)

var (
	ErrInvalidInterval = errors.New("move interval must be positive")
	ErrUnknownSession  = errors.New("unknown session")
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrUnknownPolicy   = errors.New("unknown move policy")
)

// Phase is the turn engine's position within a move attempt.
type Phase int

const (
	Idle Phase = iota
	SelectingMove
	Resolving
	SwitchingTurn
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case SelectingMove:
		return "selecting_move"
	case Resolving:
		return "resolving"
	case SwitchingTurn:
		return "switching_turn"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Policy decides which candidate a move attempt claims.
type Policy int

const (
	// Fallback flips a coin when both searches succeed, otherwise takes whichever succeeded.
	Fallback Policy = iota
	// RequireBoth only moves when both the first and second ring searches succeed.
	RequireBoth
)

func (p Policy) String() string {
	switch p {
	case Fallback:
		return "fallback"
	case RequireBoth:
		return "require_both"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "fallback":
		return Fallback, nil
	case "require_both":
		return RequireBoth, nil
	}
	return Fallback, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

type Option func(s *Session)

func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.random = searcher.NewRandom(seed)
	}
}

func WithRandom(random searcher.RandomSource) Option {
	return func(s *Session) {
		if random != nil {
			s.random = random
		}
	}
}

func WithPolicy(policy Policy) Option {
	return func(s *Session) {
		s.policy = policy
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Session) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func defaultSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
