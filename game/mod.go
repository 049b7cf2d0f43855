package game

import "time"

// Neutral is the owner of nodes that belong to neither player.
const Neutral = -1

// Players are the ids of the two competing sides.
var Players = []int{0, 1}

// World is the per-player view of the board for one turn.
// Nodes returned by a World are read-only to the caller; MoveArmy is the only
// way to change the game.
type World interface {
	MyNodes() []*Node
	OpponentNodes() []*Node
	MyID() int
	TurnNumber() int
	TotalTurns() int
	TotalTurnTime() time.Duration
	MoveArmy(source, destination *Node, amount int)
}

// Opponent returns the id of the other side, assuming exactly two players.
func Opponent(player int) int {
	return 1 - player
}
