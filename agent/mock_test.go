package agent

import (
	"time"

	"conquest/game"
)

type mockWorld struct {
	myID     int
	mine     []*game.Node
	opponent []*game.Node
	moves    []game.Move
}

func (w *mockWorld) MyNodes() []*game.Node        { return w.mine }
func (w *mockWorld) OpponentNodes() []*game.Node  { return w.opponent }
func (w *mockWorld) MyID() int                    { return w.myID }
func (w *mockWorld) TurnNumber() int              { return 1 }
func (w *mockWorld) TotalTurns() int              { return 10 }
func (w *mockWorld) TotalTurnTime() time.Duration { return time.Second }

func (w *mockWorld) MoveArmy(source, destination *game.Node, amount int) {
	w.moves = append(w.moves, game.Move{From: source, To: destination, Amount: amount})
}

// node builds a node without borders.
func node(index, owner, army int) *game.Node {
	return &game.Node{Index: index, Owner: owner, ArmyCount: army}
}

// link makes the given nodes neighbours of n, in order.
func link(n *game.Node, neighbours ...*game.Node) {
	for _, neighbour := range neighbours {
		n.Neighbours = append(n.Neighbours, neighbour)
		neighbour.Neighbours = append(neighbour.Neighbours, n)
	}
}

// fixedChooser always picks the neighbour at index pick.
type fixedChooser struct {
	pick int
}

func (c fixedChooser) ChooseDestination(neighbours []*game.Node) *game.Node {
	return neighbours[c.pick]
}
