package agent

import (
	"conquest/game"

	"golang.org/x/exp/slices"
)

// Assessment is the local threat and support picture around one node.
type Assessment struct {
	EnemyCount  int
	EnemyPower  int
	FriendCount int
	FriendPower int
}

// Assess computes every local heuristic for node.
func Assess(node *game.Node, world game.World) Assessment {
	return Assessment{
		EnemyCount:  EnemyCount(node, world),
		EnemyPower:  EnemyPower(node, world),
		FriendCount: FriendCount(node, world),
		FriendPower: FriendPower(node, world),
	}
}

// EnemyCount returns the number of neighbours owned by the opponent.
func EnemyCount(node *game.Node, world game.World) int {
	return countOwned(node, game.Opponent(world.MyID()))
}

// FriendCount returns the number of neighbours owned by the agent.
func FriendCount(node *game.Node, world game.World) int {
	return countOwned(node, world.MyID())
}

// FriendPower returns the total army of neighbours owned by the agent.
func FriendPower(node *game.Node, world game.World) int {
	return sumOwned(node, world.MyID())
}

// EdgeCount returns the number of neighbours of node.
func EdgeCount(node *game.Node) int {
	return len(node.Neighbours)
}

type enemyBand int

const (
	noEnemies enemyBand = iota
	zeroArmyEnemies
	mediumEnemies
	strongEnemies
)

func bandOf(enemies, raw int) enemyBand {
	switch {
	case enemies == 0:
		return noEnemies
	case raw == 0:
		return zeroArmyEnemies
	case raw == 1:
		return mediumEnemies
	default:
		return strongEnemies
	}
}

// EnemyPower returns a coarse, bucketed estimate of the enemy pressure on
// node, scaled by the agent's average army:
//   - 0 when no neighbour belongs to the opponent
//   - ZeroArmyEnemyScore when the bordering enemies hold no army
//   - otherwise the average army per owned node, kept as is up to the band
//     threshold and multiplied by opponentNodes/myNodes (integer quotient) above it
//
// Whenever enemies border node the score is at least 1.
func EnemyPower(node *game.Node, world game.World) int {
	enemy := game.Opponent(world.MyID())
	band := bandOf(countOwned(node, enemy), sumOwned(node, enemy))

	switch band {
	case noEnemies:
		return 0
	case zeroArmyEnemies:
		return ZeroArmyEnemyScore
	}

	threshold := MediumThreshold
	if band == strongEnemies {
		threshold = StrongThreshold
	}

	myNodes := world.MyNodes()
	average := averageArmy(myNodes)
	score := average
	if average > threshold {
		// average > 0 implies at least one owned node
		score = average * (len(world.OpponentNodes()) / len(myNodes))
	}
	return max(score, 1)
}

// RankedNearbyEnemies returns the neighbours not owned by the agent, opponent
// and neutral alike, strongest first. Ties keep neighbour order.
func RankedNearbyEnemies(node *game.Node, world game.World) []*game.Node {
	myID := world.MyID()
	enemies := []*game.Node{}
	for _, neighbour := range node.Neighbours {
		if neighbour.Owner != myID {
			enemies = append(enemies, neighbour)
		}
	}
	slices.SortStableFunc(enemies, func(a, b *game.Node) int {
		return b.ArmyCount - a.ArmyCount
	})
	return enemies
}

func countOwned(node *game.Node, owner int) int {
	count := 0
	for _, neighbour := range node.Neighbours {
		if neighbour.Owner == owner {
			count++
		}
	}
	return count
}

func sumOwned(node *game.Node, owner int) int {
	sum := 0
	for _, neighbour := range node.Neighbours {
		if neighbour.Owner == owner {
			sum += neighbour.ArmyCount
		}
	}
	return sum
}

// averageArmy is the integer mean army of nodes, 0 for none.
func averageArmy(nodes []*game.Node) int {
	if len(nodes) == 0 {
		return 0
	}
	sum := 0
	for _, node := range nodes {
		sum += node.ArmyCount
	}
	return sum / len(nodes)
}
