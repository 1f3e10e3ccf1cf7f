// meta/meta.go
package meta

import "time"

// GRID_SIZE defines the default board width and height.
const GRID_SIZE = 8

// MOVE_INTERVAL defines the default time between move attempts.
const MOVE_INTERVAL = 500 * time.Millisecond

// MOVE_POLICY defines the default move policy name.
const MOVE_POLICY = "fallback"

// GAMES defines the number of games per experiment.
const GAMES = 10

// MAX_TICKS caps the move attempts of a single experiment game.
const MAX_TICKS = 10000

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/results"

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"
