package engine

import (
	"conquest/experiments/metrics"
	"conquest/game"
)

// Player takes one turn through its own view of the world.
type Player interface {
	DoTurn(world game.World) metrics.TurnMetric
}

type Engine interface {
	// Run plays a game till there's a winner or the turns run out
	Run() (winner int, matchMetric metrics.MatchMetric, turnMetrics []metrics.TurnMetric)
}
