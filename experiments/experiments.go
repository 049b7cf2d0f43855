package experiments

import (
	"fmt"

	"conquest/agent"
	"conquest/config"
	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/meta"

	"github.com/rs/zerolog/log"
)

const Name = "matches"

// Run plays cfg.Matches matches between the configured policies and stores
// the records under cfg.OutputDir. It returns the directory written to.
func Run(cfg *config.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}
	configs := make([]metrics.AgentConfig, len(cfg.Policies))
	for i, policy := range cfg.Policies {
		configs[i] = metrics.AgentConfig{ID: i, Policy: policy, Seed: cfg.Seed + uint64(i)}
	}

	matchRecords := []metrics.MatchRecord{}
	turnRecords := []metrics.TurnRecord{}
	wins := make(map[int]int)

	log.Info().Msgf("starting %d matches of %s vs %s...", cfg.Matches, cfg.Policies[0], cfg.Policies[1])

	for i := 0; i < cfg.Matches; i++ {
		// Agents are reseeded per match so every match differs but the batch is reproducible
		offset := uint64(i * len(configs))
		winner, matchMetric, turnMetrics, err := runMatch(cfg, configs, offset)
		if err != nil {
			return "", err
		}
		wins[winner]++
		matchRecords = append(matchRecords, metrics.MatchRecord{
			Number:      i + 1,
			Agent0:      configs[0].ID,
			Agent1:      configs[1].ID,
			MatchMetric: matchMetric,
		})
		for _, tm := range turnMetrics {
			turnRecords = append(turnRecords, metrics.TurnRecord{
				Match:      matchMetric.ID,
				TurnMetric: tm,
			})
		}
		log.Info().Msgf("completed match %d of %d with winner: %d", i+1, cfg.Matches, winner)
	}

	log.Info().
		Int("wins0", wins[0]).
		Int("wins1", wins[1]).
		Int("draws", wins[game.Neutral]).
		Msg("completed matches")

	writer, err := metrics.NewWriter(cfg.OutputDir, Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteMatchRecords(matchRecords); err != nil {
		return "", fmt.Errorf("failed to write match records: %w", err)
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored match records")

	return writer.Dir(), nil
}

// runMatch plays a single match on a fresh board
func runMatch(cfg *config.Config, configs []metrics.AgentConfig, offset uint64) (int, metrics.MatchMetric, []metrics.TurnMetric, error) {
	m, err := loadMap(cfg.MapFile)
	if err != nil {
		return 0, metrics.MatchMetric{}, nil, err
	}

	players := make([]engine.Player, len(configs))
	for i, ac := range configs {
		policy, err := agent.PolicyByName(ac.Policy, ac.Seed+offset)
		if err != nil {
			return 0, metrics.MatchMetric{}, nil, err
		}
		players[i] = agent.New(
			agent.WithPolicy(policy),
			agent.WithLogger(log.With().Int("player", i).Logger()),
			agent.WithMetrics(),
		)
	}

	state := game.NewGameState(m, cfg.Turns, cfg.TurnTime, meta.ArmyGrowth)
	winner, matchMetric, turnMetrics := engine.LocalEngine(players, state).Run()
	return winner, matchMetric, turnMetrics, nil
}

func loadMap(path string) (*game.Map, error) {
	if path == "" {
		return game.CreateMap(meta.StartArmy, meta.NeutralArmy), nil
	}
	m, err := game.LoadMap(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", path, err)
	}
	return m, nil
}
