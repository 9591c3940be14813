package entity

import "fmt"

// Move is a 0-indexed (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < BoardSize && m.Col >= 0 && m.Col < BoardSize
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

func (m Move) index() int {
	return m.Row*BoardSize + m.Col
}

func moveAt(index int) Move {
	return Move{Row: index / BoardSize, Col: index % BoardSize}
}
