// meta/meta.go
package meta

import "time"

// MAX_TURNS defines the default number of turns of a game.
const MAX_TURNS = 300

// TurnTime defines the default time budget of a turn.
const TurnTime = 400 * time.Millisecond

// DefaultSeed seeds agents that are not given a seed.
const DefaultSeed = 1

// StartArmy is the army on each player's starting node.
const StartArmy = 20

// NeutralArmy is the garrison of every neutral node at the start.
const NeutralArmy = 2

// ArmyGrowth is the army each owned node gains after a turn.
const ArmyGrowth = 1
