package agent

import (
	"testing"

	"conquest/game"

	"github.com/stretchr/testify/require"
)

const (
	me    = 0
	enemy = 1
)

func TestNeighbourCounts(t *testing.T) {
	t.Run("one enemy and one friend", func(t *testing.T) {
		a := node(0, me, 10)
		b := node(1, enemy, 4)
		c := node(2, me, 6)
		link(a, b, c)
		world := &mockWorld{myID: me, mine: []*game.Node{a, c}, opponent: []*game.Node{b}}

		require.Equal(t, 1, EnemyCount(a, world), "B is the only enemy neighbour")
		require.Equal(t, 1, FriendCount(a, world), "C is the only friendly neighbour")
		require.Equal(t, 6, FriendPower(a, world), "Friend power should sum C's army")
		require.Equal(t, []*game.Node{b}, RankedNearbyEnemies(a, world), "B is the only hostile neighbour")
		require.Equal(t, 2, EdgeCount(a), "A has two borders")
	})

	t.Run("all neutral neighbours", func(t *testing.T) {
		a := node(0, me, 10)
		link(a, node(1, game.Neutral, 3), node(2, game.Neutral, 7))
		world := &mockWorld{myID: me, mine: []*game.Node{a}, opponent: []*game.Node{node(9, enemy, 5)}}

		require.Equal(t, 0, EnemyCount(a, world), "Neutral nodes are not enemies")
		require.Equal(t, 0, EnemyPower(a, world), "No enemies means no enemy power")
		require.Equal(t, 0, FriendCount(a, world), "Neutral nodes are not friends")
		require.Equal(t, 0, FriendPower(a, world), "Neutral nodes are not friends")
	})

	t.Run("enemy id from the second player's view", func(t *testing.T) {
		a := node(0, enemy, 5)
		b := node(1, me, 3)
		link(a, b)
		world := &mockWorld{myID: enemy, mine: []*game.Node{a}, opponent: []*game.Node{b}}

		require.Equal(t, 1, EnemyCount(a, world), "Player 0 is the opponent of player 1")
		require.Equal(t, 0, FriendCount(a, world), "No friendly neighbour")
	})

	t.Run("counts never exceed the degree", func(t *testing.T) {
		a := node(0, me, 1)
		link(a, node(1, me, 1), node(2, enemy, 1), node(3, game.Neutral, 1), node(4, enemy, 2))
		world := &mockWorld{myID: me, mine: []*game.Node{a}}

		require.Equal(t, 3, FriendCount(a, world)+EnemyCount(a, world), "Neutral neighbour counts for neither side")
		require.Less(t, FriendCount(a, world)+EnemyCount(a, world), EdgeCount(a))
	})
}

func TestEnemyPower(t *testing.T) {
	t.Run("no enemies", func(t *testing.T) {
		a := node(0, me, 10)
		link(a, node(1, me, 40))
		world := &mockWorld{myID: me, mine: []*game.Node{a}}

		require.Equal(t, 0, EnemyPower(a, world))
	})

	t.Run("enemies without army", func(t *testing.T) {
		a := node(0, me, 10)
		link(a, node(1, enemy, 0), node(2, enemy, 0))
		world := &mockWorld{myID: me, mine: []*game.Node{a}}

		require.Equal(t, ZeroArmyEnemyScore, EnemyPower(a, world), "Enemies with no army score a fixed value")
	})

	t.Run("medium band under threshold keeps the average", func(t *testing.T) {
		a := node(0, me, 8)
		other := node(1, me, 4)
		e := node(2, enemy, 1)
		link(a, e)
		world := &mockWorld{myID: me, mine: []*game.Node{a, other}, opponent: []*game.Node{e}}

		require.Equal(t, 6, EnemyPower(a, world), "Average of 8 and 4 is under the medium threshold")
	})

	t.Run("medium band over threshold scales by node ratio", func(t *testing.T) {
		a := node(0, me, 12)
		e := node(1, enemy, 1)
		link(a, e)
		world := &mockWorld{
			myID:     me,
			mine:     []*game.Node{a},
			opponent: []*game.Node{e, node(2, enemy, 0), node(3, enemy, 0)},
		}

		require.Equal(t, 36, EnemyPower(a, world), "12 * 3 opponent nodes / 1 owned node")
	})

	t.Run("strong band uses the higher threshold", func(t *testing.T) {
		a := node(0, me, 25)
		e := node(1, enemy, 40)
		link(a, e)
		world := &mockWorld{
			myID:     me,
			mine:     []*game.Node{a},
			opponent: []*game.Node{e, node(2, enemy, 0)},
		}

		require.Equal(t, 25, EnemyPower(a, world), "An average of 25 is under the strong threshold")

		a.ArmyCount = 31
		require.Equal(t, 62, EnemyPower(a, world), "31 * 2 opponent nodes / 1 owned node")
	})

	t.Run("node ratio is divided before scaling", func(t *testing.T) {
		a := node(0, me, 40)
		other := node(1, me, 40)
		e := node(2, enemy, 1)
		link(a, e)
		world := &mockWorld{
			myID:     me,
			mine:     []*game.Node{a, other},
			opponent: []*game.Node{e, node(3, enemy, 0), node(4, enemy, 0)},
		}

		require.Equal(t, 40, EnemyPower(a, world), "40 * (3 / 2) truncates the ratio to 1")
	})

	t.Run("enemy presence never scores zero", func(t *testing.T) {
		a := node(0, me, 40)
		e := node(1, enemy, 3)
		link(a, e)
		mine := []*game.Node{a}
		for i := 2; i < 10; i++ {
			mine = append(mine, node(i, me, 40))
		}
		world := &mockWorld{myID: me, mine: mine, opponent: []*game.Node{e}}

		require.Equal(t, 1, EnemyPower(a, world), "40 * (1 / 9) is 0, floored to 1")

		for _, n := range mine {
			n.ArmyCount = 0
		}
		require.Equal(t, 1, EnemyPower(a, world), "Score is floored at 1 when enemies border the node")
	})

	t.Run("does not mutate nodes", func(t *testing.T) {
		a := node(0, me, 12)
		e := node(1, enemy, 7)
		link(a, e)
		world := &mockWorld{myID: me, mine: []*game.Node{a}, opponent: []*game.Node{e}}

		EnemyPower(a, world)
		Assess(a, world)

		require.Equal(t, 12, a.ArmyCount)
		require.Equal(t, 7, e.ArmyCount)
		require.Equal(t, enemy, e.Owner)
	})
}

func TestRankedNearbyEnemies(t *testing.T) {
	t.Run("strongest first with stable ties", func(t *testing.T) {
		a := node(0, me, 1)
		weak := node(1, enemy, 2)
		tieFirst := node(2, game.Neutral, 5)
		friend := node(3, me, 100)
		strong := node(4, enemy, 9)
		tieSecond := node(5, enemy, 5)
		link(a, weak, tieFirst, friend, strong, tieSecond)
		world := &mockWorld{myID: me, mine: []*game.Node{a, friend}}

		got := RankedNearbyEnemies(a, world)

		require.Equal(t, []*game.Node{strong, tieFirst, tieSecond, weak}, got,
			"Hostile neighbours sorted by descending army, ties in neighbour order")
	})

	t.Run("no hostile neighbours", func(t *testing.T) {
		a := node(0, me, 1)
		link(a, node(1, me, 3))
		world := &mockWorld{myID: me}

		require.Empty(t, RankedNearbyEnemies(a, world))
	})

	t.Run("leaves neighbour order untouched", func(t *testing.T) {
		a := node(0, me, 1)
		first := node(1, enemy, 1)
		second := node(2, enemy, 9)
		link(a, first, second)
		world := &mockWorld{myID: me}

		RankedNearbyEnemies(a, world)

		require.Equal(t, []*game.Node{first, second}, a.Neighbours)
	})
}
