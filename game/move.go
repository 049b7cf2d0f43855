package game

import "fmt"

// Move transfers Amount armies from From to the adjacent node To.
type Move struct {
	From   *Node
	To     *Node
	Amount int
}

func (m Move) String() string {
	if m.From == nil || m.To == nil {
		return "move(<nil>)"
	}
	return fmt.Sprintf("move(%d -> %d, %d)", m.From.Index, m.To.Index, m.Amount)
}
