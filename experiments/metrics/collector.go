package metrics

import (
	"time"

	"territory/game"
)

type MoveMetric struct {
	Tick         int
	Player       game.PlayerType
	Kind         game.MoveKind
	Target       game.Coordinate
	Origin       game.Coordinate
	Conversions  int
	Player1Score int
	Player2Score int
}

type GameMetric struct {
	Seed        uint64
	GridSize    int
	Policy      string
	Result      game.Result
	Attempts    int
	Expansions  int
	Leaps       int
	Skips       int
	Conversions int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// Collector gathers the metrics of one game. Start begins a new game and
// discards anything recorded before.
type Collector interface {
	Start(gridSize int)
	AddMove(metric MoveMetric)
	Complete(result game.Result) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(gridSize int) {
	c.game = GameMetric{
		GridSize:  gridSize,
		StartTime: time.Now(),
	}
	c.moves = []MoveMetric{}
}

func (c *collector) AddMove(metric MoveMetric) {
	c.game.Attempts++
	switch metric.Kind {
	case game.Expand:
		c.game.Expansions++
	case game.Leap:
		c.game.Leaps++
	default:
		c.game.Skips++
	}
	c.game.Conversions += metric.Conversions
	c.moves = append(c.moves, metric)
}

func (c *collector) Complete(result game.Result) (GameMetric, []MoveMetric) {
	c.game.Result = result
	c.game.EndTime = time.Now()
	c.game.Duration = c.game.EndTime.Sub(c.game.StartTime)
	return c.game, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(gridSize int)        {}
func (c *dummyCollector) AddMove(metric MoveMetric) {}
func (c *dummyCollector) Complete(result game.Result) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
