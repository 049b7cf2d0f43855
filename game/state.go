package game

import (
	"errors"
	"fmt"
	"time"
)

// GameState is a local, in-memory game. It hands each player a World view,
// queues the orders they issue and applies them when the turn is resolved.
type GameState struct {
	Map        *Map          // Board, mutated only by Resolve
	Turn       int           // Current turn, starting at 1
	TotalTurns int           // Number of turns in the game
	TurnTime   time.Duration // Time budget per turn
	Growth     int           // Armies gained by each owned node after a turn
	pending    [][]Move      // Queued orders per player id
}

// NewGameState initializes and returns a new GameState on m.
func NewGameState(m *Map, totalTurns int, turnTime time.Duration, growth int) *GameState {
	return &GameState{
		Map:        m,
		Turn:       1,
		TotalTurns: totalTurns,
		TurnTime:   turnTime,
		Growth:     growth,
		pending:    make([][]Move, len(Players)),
	}
}

// View returns the World of player for the current turn.
func (gs *GameState) View(player int) World {
	return &playerView{state: gs, player: player}
}

// Pending returns the orders queued by player this turn.
func (gs *GameState) Pending(player int) []Move {
	return gs.pending[player]
}

// Resolve applies all queued orders, player by player in id order, grows
// owned nodes and advances the turn. Orders that break the rules are dropped
// and reported in the returned error; the rest still apply.
func (gs *GameState) Resolve() error {
	var errs []error
	for player, moves := range gs.pending {
		for _, move := range moves {
			if err := gs.apply(player, move); err != nil {
				errs = append(errs, fmt.Errorf("player %d %s dropped: %w", player, move, err))
			}
		}
		gs.pending[player] = nil
	}

	for _, node := range gs.Map.Nodes {
		if node.Owner != Neutral {
			node.ArmyCount += gs.Growth
		}
	}
	gs.Turn++
	return errors.Join(errs...)
}

func (gs *GameState) apply(player int, move Move) error {
	from, to := move.From, move.To
	if from == nil || to == nil {
		return fmt.Errorf("missing node")
	}
	if from.Owner != player {
		return fmt.Errorf("source %d is not owned by player", from.Index)
	}
	if !gs.Map.AreAdjacent(from, to) {
		return fmt.Errorf("nodes %d and %d are not adjacent", from.Index, to.Index)
	}
	if move.Amount < 0 {
		return fmt.Errorf("negative amount %d", move.Amount)
	}

	// The source may have lost armies to earlier orders this turn
	amount := min(move.Amount, from.ArmyCount)
	from.ArmyCount -= amount

	if to.Owner == player {
		to.ArmyCount += amount
		return nil
	}
	if amount > to.ArmyCount {
		to.Owner = player
		to.ArmyCount = amount - to.ArmyCount
		return nil
	}
	to.ArmyCount -= amount
	return nil
}

// Winner returns the only player still owning nodes, or Neutral while both
// players (or neither) hold territory.
func (gs *GameState) Winner() int {
	alive := []int{}
	for _, player := range Players {
		if len(gs.Map.Owned(player)) > 0 {
			alive = append(alive, player)
		}
	}
	if len(alive) == 1 {
		return alive[0]
	}
	return Neutral
}

// IsOver reports whether the game has a winner or ran out of turns.
func (gs *GameState) IsOver() bool {
	return gs.Winner() != Neutral || gs.Turn > gs.TotalTurns
}

// Armies returns the total army of player.
func (gs *GameState) Armies(player int) int {
	total := 0
	for _, node := range gs.Map.Owned(player) {
		total += node.ArmyCount
	}
	return total
}

type playerView struct {
	state  *GameState
	player int
}

func (v *playerView) MyNodes() []*Node {
	return v.state.Map.Owned(v.player)
}

func (v *playerView) OpponentNodes() []*Node {
	return v.state.Map.Owned(Opponent(v.player))
}

func (v *playerView) MyID() int {
	return v.player
}

func (v *playerView) TurnNumber() int {
	return v.state.Turn
}

func (v *playerView) TotalTurns() int {
	return v.state.TotalTurns
}

func (v *playerView) TotalTurnTime() time.Duration {
	return v.state.TurnTime
}

func (v *playerView) MoveArmy(source, destination *Node, amount int) {
	v.state.pending[v.player] = append(v.state.pending[v.player], Move{
		From:   source,
		To:     destination,
		Amount: amount,
	})
}

// Discard drops the orders queued by player this turn.
func (gs *GameState) Discard(player int) {
	gs.pending[player] = nil
}
