package game

import (
	"fmt"
	"sort"

	"conquest/utils"
)

// Node is a territory on the board.
type Node struct {
	Index      int     // Stable identifier
	ArmyCount  int     // Current military strength, never negative
	Owner      int     // Player id, or Neutral
	Neighbours []*Node // Adjacent nodes, owned by the Map
}

// Map is the board graph. Nodes are shared with every World handed out for it.
type Map struct {
	Nodes map[int]*Node // Maps node index to node
}

// NewMap creates and returns an empty Map.
func NewMap() *Map {
	return &Map{
		Nodes: make(map[int]*Node),
	}
}

// AddNode adds a node to the map, replacing any node with the same index.
func (m *Map) AddNode(index, owner, army int) *Node {
	node := &Node{Index: index, Owner: owner, ArmyCount: army}
	m.Nodes[index] = node
	return node
}

// AddBorder adds a bidirectional border between two nodes.
func (m *Map) AddBorder(index1, index2 int) error {
	n1, ok := m.Nodes[index1]
	if !ok {
		return fmt.Errorf("unknown node %d", index1)
	}
	n2, ok := m.Nodes[index2]
	if !ok {
		return fmt.Errorf("unknown node %d", index2)
	}
	if index1 == index2 {
		return fmt.Errorf("node %d cannot border itself", index1)
	}
	if !utils.Contains(n1.Neighbours, n2) {
		n1.Neighbours = append(n1.Neighbours, n2)
	}
	if !utils.Contains(n2.Neighbours, n1) {
		n2.Neighbours = append(n2.Neighbours, n1)
	}
	return nil
}

// AreAdjacent checks if two nodes share a border.
func (m *Map) AreAdjacent(from, to *Node) bool {
	return from != nil && utils.Contains(from.Neighbours, to)
}

// Indices returns all node indices in ascending order.
func (m *Map) Indices() []int {
	indices := make([]int, 0, len(m.Nodes))
	for index := range m.Nodes {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

// Owned returns the nodes owned by player, ordered by index.
func (m *Map) Owned(player int) []*Node {
	owned := []*Node{}
	for _, index := range m.Indices() {
		if node := m.Nodes[index]; node.Owner == player {
			owned = append(owned, node)
		}
	}
	return owned
}

// CreateMap builds the default board: the Swiss cantons, all neutral except
// one starting canton per player.
func CreateMap(startArmy, neutralArmy int) *Map {
	m := NewMap()

	for id := range cantonAbbreviations {
		m.AddNode(id, Neutral, neutralArmy)
	}
	// Walk in index order so neighbour order, and so seeded play, is reproducible
	for _, abbrev := range cantonAbbreviations {
		for _, neighborAbbrev := range adjacencyData[abbrev] {
			// Static data, every abbreviation is known
			_ = m.AddBorder(cantonIDMap[abbrev], cantonIDMap[neighborAbbrev])
		}
	}
	for player, abbrev := range startingCantons {
		start := m.Nodes[cantonIDMap[abbrev]]
		start.Owner = player
		start.ArmyCount = startArmy
	}

	return m
}

// cantonName returns the abbreviation of a node on the default board.
func cantonName(index int) string {
	if index < 0 || index >= len(cantonAbbreviations) {
		return ""
	}
	return cantonAbbreviations[index]
}

// Starting canton per player id on the default board
var startingCantons = []string{"GE", "TG"}

var cantonAbbreviations = []string{
	"AG", "AI", "AR", "BE", "BL", "BS", "FR", "GE", "GL", "GR",
	"JU", "LU", "NE", "NW", "OW", "SG", "SH", "SO", "SZ", "TG",
	"TI", "UR", "VD", "VS", "ZG", "ZH",
}

var cantonIDMap = func() map[string]int {
	ids := make(map[string]int, len(cantonAbbreviations))
	for id, abbrev := range cantonAbbreviations {
		ids[abbrev] = id
	}
	return ids
}()

var adjacencyData = map[string][]string{
	"AG": {"BL", "LU", "ZG", "ZH", "SO"},
	"AI": {"AR", "SG"},
	"AR": {"AI", "SG"},
	"BE": {"FR", "JU", "NE", "SO", "VD", "VS", "LU"},
	"BL": {"AG", "BS", "SO", "JU"},
	"BS": {"BL"},
	"FR": {"BE", "VD", "NE"},
	"GE": {"VD"},
	"GL": {"SG", "SZ", "GR"},
	"GR": {"SG", "TI", "GL", "UR"},
	"JU": {"BE", "SO", "BL"},
	"LU": {"AG", "BE", "NW", "OW", "ZG"},
	"NE": {"BE", "FR", "VD"},
	"NW": {"OW", "LU", "UR"},
	"OW": {"NW", "UR", "LU"},
	"SG": {"AI", "AR", "GL", "TG", "ZH", "GR"},
	"SH": {"ZH", "TG"},
	"SO": {"BE", "BL", "JU", "AG"},
	"SZ": {"ZG", "UR", "GL"},
	"TG": {"SH", "SG", "ZH"},
	"TI": {"GR", "VS", "UR"},
	"UR": {"SZ", "OW", "GR", "TI", "NW"},
	"VD": {"GE", "FR", "VS", "NE", "BE"},
	"VS": {"VD", "BE", "TI", "UR"},
	"ZG": {"AG", "SZ", "LU", "ZH"},
	"ZH": {"AG", "SG", "TG", "SH", "ZG"},
}
