package agent

import (
	"fmt"

	"conquest/game"

	"golang.org/x/exp/rand"
)

// Chooser picks the destination of a move among a node's neighbours.
type Chooser interface {
	ChooseDestination(neighbours []*game.Node) *game.Node
}

// RandomChooser picks a neighbour uniformly at random.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser returns a chooser drawing from its own generator seeded with seed.
func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{rng: rand.New(rand.NewSource(seed))}
}

func (c *RandomChooser) ChooseDestination(neighbours []*game.Node) *game.Node {
	if len(neighbours) == 0 {
		return nil
	}
	return neighbours[c.rng.Intn(len(neighbours))]
}

// Policy decides the single move, if any, issued from node this turn.
type Policy interface {
	Decide(node *game.Node, world game.World, assessment Assessment) (game.Move, bool)
}

// BaselinePolicy moves half of a node's army to a neighbour picked by Chooser,
// regardless of who owns it.
type BaselinePolicy struct {
	Chooser Chooser
}

func (p BaselinePolicy) Decide(node *game.Node, world game.World, assessment Assessment) (game.Move, bool) {
	if len(node.Neighbours) == 0 {
		return game.Move{}, false
	}
	destination := p.Chooser.ChooseDestination(node.Neighbours)
	if destination == nil {
		return game.Move{}, false
	}
	return game.Move{From: node, To: destination, Amount: node.ArmyCount / 2}, true
}

// GreedyPolicy attacks the weakest hostile neighbour the node can capture,
// keeping one army behind. Nodes with no hostile neighbour push their army
// towards the friendly neighbour facing the most hostile nodes.
type GreedyPolicy struct{}

func (GreedyPolicy) Decide(node *game.Node, world game.World, assessment Assessment) (game.Move, bool) {
	available := node.ArmyCount - 1
	if available <= 0 {
		return game.Move{}, false
	}

	hostiles := RankedNearbyEnemies(node, world)
	if len(hostiles) > 0 {
		weakest := hostiles[len(hostiles)-1]
		if available > weakest.ArmyCount {
			return game.Move{From: node, To: weakest, Amount: available}, true
		}
		return game.Move{}, false
	}

	if assessment.FriendCount == 0 {
		return game.Move{}, false
	}
	var front *game.Node
	mostHostiles := 0
	for _, neighbour := range node.Neighbours {
		if count := len(RankedNearbyEnemies(neighbour, world)); count > mostHostiles {
			front = neighbour
			mostHostiles = count
		}
	}
	if front == nil {
		return game.Move{}, false
	}
	return game.Move{From: node, To: front, Amount: available}, true
}

// Policy names accepted by PolicyByName
const (
	BaselinePolicyName = "baseline"
	GreedyPolicyName   = "greedy"
)

// PolicyByName builds a policy from its configuration name.
func PolicyByName(name string, seed uint64) (Policy, error) {
	switch name {
	case BaselinePolicyName:
		return BaselinePolicy{Chooser: NewRandomChooser(seed)}, nil
	case GreedyPolicyName:
		return GreedyPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
