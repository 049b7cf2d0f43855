package game

import "math"

// Evaluate scores a game from player's perspective between -1 and 1.
type Evaluate func(gs *GameState, player int) float64

// EvaluateResources simply tallies each player's controlled nodes and armies to produce a relative score between -1 and 1 from player's perspective
func EvaluateResources(gs *GameState, player int) float64 {
	territoryScore, troopScore := gs.calculateResourceScores(player)
	return (territoryScore + troopScore) / 2.0
}

// EvaluateBorderStrength considers each player's border strength, in addition to controlled resources, to produce a score between -1 and 1 from player's perspective
func EvaluateBorderStrength(gs *GameState, player int) float64 {
	territoryScore, troopScore := gs.calculateResourceScores(player)
	borderScore := gs.calculateBorderScore(player)
	return (territoryScore + troopScore + borderScore) / 3.0
}

func (gs *GameState) calculateResourceScores(player int) (territoryScore, troopScore float64) {
	territories := make(map[int]float64)
	troops := make(map[int]float64)

	for _, node := range gs.Map.Nodes {
		if node.Owner != Neutral {
			territories[node.Owner]++
			troops[node.Owner] += float64(node.ArmyCount)
		}
	}

	opponent := Opponent(player)
	territoryScore = normalize(territories[player], territories[opponent])
	troopScore = normalize(troops[player], troops[opponent])
	return territoryScore, troopScore
}

func (gs *GameState) calculateBorderScore(player int) float64 {
	opponent := Opponent(player)
	borderStrength := make(map[int]float64)

	for _, node := range gs.Map.Nodes {
		if node.Owner != player && node.Owner != opponent {
			continue
		}

		myTroops := float64(node.ArmyCount)
		enemyBorders := 0
		troopDiff := 0.0
		// Only the other player's nodes count as a line of attack, neutrals do not fight back
		for _, neighbour := range node.Neighbours {
			if neighbour.Owner == Opponent(node.Owner) {
				enemyBorders++
				troopDiff += myTroops - float64(neighbour.ArmyCount)
			}
		}
		// Scale by square root to favor but not overly favor multiple lines of attack
		if enemyBorders > 0 {
			borderStrength[node.Owner] += troopDiff / math.Sqrt(float64(enemyBorders))
		}
	}

	return normalize(borderStrength[player], borderStrength[opponent])
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := math.Abs(value) + math.Abs(otherValue)
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
