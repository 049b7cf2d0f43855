package agent

// Tuning points of the enemy power heuristic

// Score of a node bordering enemies that have no army at all
const ZeroArmyEnemyScore = 5

// Average friendly army at or under which a medium band keeps the average as is
const MediumThreshold = 10

// Average friendly army at or under which a strong band keeps the average as is
const StrongThreshold = 30
