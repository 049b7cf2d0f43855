package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type boardFile struct {
	Nodes []struct {
		Index      int   `yaml:"index"`
		Owner      *int  `yaml:"owner"`
		Army       int   `yaml:"army"`
		Neighbours []int `yaml:"neighbours"`
	} `yaml:"nodes"`
}

// LoadMap reads a board from a YAML file. Nodes without an owner are neutral.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	return ParseMap(data)
}

// ParseMap decodes a YAML board.
func ParseMap(data []byte) (*Map, error) {
	var board boardFile
	if err := yaml.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to decode map: %w", err)
	}
	if len(board.Nodes) == 0 {
		return nil, fmt.Errorf("map has no nodes")
	}

	m := NewMap()
	for _, n := range board.Nodes {
		if _, ok := m.Nodes[n.Index]; ok {
			return nil, fmt.Errorf("duplicate node %d", n.Index)
		}
		if n.Army < 0 {
			return nil, fmt.Errorf("node %d has negative army %d", n.Index, n.Army)
		}
		owner := Neutral
		if n.Owner != nil {
			owner = *n.Owner
		}
		if owner != Neutral && owner != Players[0] && owner != Players[1] {
			return nil, fmt.Errorf("node %d has unknown owner %d", n.Index, owner)
		}
		m.AddNode(n.Index, owner, n.Army)
	}
	for _, n := range board.Nodes {
		for _, neighbour := range n.Neighbours {
			if err := m.AddBorder(n.Index, neighbour); err != nil {
				return nil, fmt.Errorf("invalid border of node %d: %w", n.Index, err)
			}
		}
	}
	return m, nil
}
