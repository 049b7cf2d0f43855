package agent

import (
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(a *Agent)

// Agent plays one side of a game, one node-local decision per owned node.
type Agent struct {
	policy  Policy
	logger  zerolog.Logger
	metrics metrics.Collector
}

// WithPolicy replaces the baseline random policy.
func WithPolicy(policy Policy) Option {
	return func(a *Agent) {
		if policy != nil {
			a.policy = policy
		}
	}
}

// WithSeed reseeds the baseline policy. Any other policy is left as is.
func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		if _, ok := a.policy.(BaselinePolicy); ok {
			a.policy = BaselinePolicy{Chooser: NewRandomChooser(seed)}
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

func WithMetrics() Option {
	return func(a *Agent) {
		a.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Agent {
	a := &Agent{ // Default values
		policy:  BaselinePolicy{Chooser: NewRandomChooser(meta.DefaultSeed)},
		logger:  log.Logger,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// DoTurn issues at most one order per owned node through world and returns
// the turn metrics (empty unless the agent collects metrics).
func (a *Agent) DoTurn(world game.World) metrics.TurnMetric {
	myNodes := world.MyNodes()
	a.metrics.Start(world.TurnNumber(), world.MyID(), len(myNodes))

	if len(myNodes) == 0 {
		a.logger.Debug().Int("player", world.MyID()).Int("turn", world.TurnNumber()).Msg("no nodes owned, skipping turn")
		return a.metrics.Complete()
	}

	for _, node := range myNodes {
		assessment := Assess(node, world)
		a.logger.Debug().
			Int("node", node.Index).
			Int("army", node.ArmyCount).
			Int("enemies", assessment.EnemyCount).
			Int("enemy_power", assessment.EnemyPower).
			Int("friends", assessment.FriendCount).
			Int("friend_power", assessment.FriendPower).
			Msg("node assessed")

		move, ok := a.policy.Decide(node, world, assessment)
		if !ok {
			a.metrics.AddSkip()
			continue
		}
		world.MoveArmy(move.From, move.To, move.Amount)
		a.metrics.AddMove(move.Amount)
	}

	metric := a.metrics.Complete()
	a.logger.Debug().
		Int("player", world.MyID()).
		Int("turn", world.TurnNumber()).
		Int("total_turns", world.TotalTurns()).
		Dur("budget", world.TotalTurnTime()).
		Int("moves", metric.Moves).
		Msg("turn done")
	return metric
}
