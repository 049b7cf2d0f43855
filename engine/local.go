package engine

import (
	"time"

	"conquest/experiments/metrics"
	"conquest/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *localEngine) {
		e.logger = logger
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *localEngine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

type localEngine struct {
	State    *game.GameState
	Players  []Player // Indexed by player id
	logger   zerolog.Logger
	evaluate game.Evaluate
}

// LocalEngine plays players against each other on state, in process.
func LocalEngine(players []Player, state *game.GameState, options ...Option) *localEngine {
	if len(players) != len(game.Players) {
		panic("need exactly one agent per player")
	}
	e := &localEngine{
		State:    state,
		Players:  players,
		logger:   log.Logger,
		evaluate: game.EvaluateResources,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found or the turns run out.
// Scores are from player 0's perspective.
func (e *localEngine) Run() (int, metrics.MatchMetric, []metrics.TurnMetric) {
	match := metrics.MatchMetric{
		ID:        uuid.NewString(),
		StartTime: time.Now(),
	}
	logger := e.logger.With().Str("match", match.ID).Logger()
	logger.Info().Int("turns", e.State.TotalTurns).Msg("match started")

	var turnMetrics []metrics.TurnMetric
	for !e.State.IsOver() {
		for _, player := range game.Players {
			start := time.Now()
			metric := e.Players[player].DoTurn(e.State.View(player))
			if elapsed := time.Since(start); elapsed > e.State.TurnTime {
				// Orders that miss the deadline are forfeited
				logger.Warn().Int("player", player).Int("turn", e.State.Turn).Dur("elapsed", elapsed).Msg("turn over budget, orders dropped")
				e.State.Discard(player)
			}
			turnMetrics = append(turnMetrics, metric)
		}

		turn := e.State.Turn
		if err := e.State.Resolve(); err != nil {
			logger.Warn().Err(err).Int("turn", turn).Msg("orders dropped")
		}
		logger.Debug().
			Int("turn", turn).
			Int("armies0", e.State.Armies(0)).
			Int("armies1", e.State.Armies(1)).
			Msg("turn resolved")
	}

	match.Winner = e.State.Winner()
	match.Score = e.evaluate(e.State, game.Players[0])
	match.EndTime = time.Now()
	match.Duration = match.EndTime.Sub(match.StartTime)
	match.TotalTurns = e.State.Turn - 1

	if match.Winner != game.Neutral {
		logger.Info().Int("winner", match.Winner).Int("turns", match.TotalTurns).Msg("match over")
	} else {
		logger.Info().Float64("score", match.Score).Int("turns", match.TotalTurns).Msg("stopped without a winner")
	}
	return match.Winner, match, turnMetrics
}
