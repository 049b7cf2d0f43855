package metrics

import (
	"time"
)

type AgentConfig struct {
	ID     int
	Policy string
	Seed   uint64
}

type TurnMetric struct {
	Turn     int
	Player   int // Player ID
	Duration time.Duration
	Nodes    int // Nodes owned at the start of the turn
	Moves    int // Orders issued
	Skipped  int // Owned nodes that issued no order
	Moved    int // Armies sent in total
}

type MatchMetric struct {
	ID         string
	Winner     int // Player ID, -1 if nobody won
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
}

type Collector interface {
	Start(turn, player, nodes int)
	AddMove(amount int)
	AddSkip()
	Complete() TurnMetric
}

type collector struct {
	startTime time.Time
	metric    TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(turn, player, nodes int) {
	m.startTime = time.Now()
	m.metric = TurnMetric{Turn: turn, Player: player, Nodes: nodes}
}

func (m *collector) AddMove(amount int) {
	m.metric.Moves++
	m.metric.Moved += amount
}

func (m *collector) AddSkip() {
	m.metric.Skipped++
}

func (m *collector) Complete() TurnMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turn, player, nodes int) {}
func (m *dummyCollector) AddMove(amount int)            {}
func (m *dummyCollector) AddSkip()                      {}
func (m *dummyCollector) Complete() TurnMetric          { return TurnMetric{} }
