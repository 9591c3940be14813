package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// window holds the flat cell indexes of WinLength consecutive cells.
type window [entity.WinLength]int

// windows - every row, column and diagonal window of the board, built once.
var windows = buildWindows()

func buildWindows() []window {
	result := make([]window, 0, 180)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			for _, dir := range entity.Directions {
				end := entity.NewMove(row+(entity.WinLength-1)*dir.Row, col+(entity.WinLength-1)*dir.Col)
				if !end.InBounds() {
					continue
				}

				var w window
				for step := range w {
					w[step] = (row+step*dir.Row)*entity.BoardSize + col + step*dir.Col
				}
				result = append(result, w)
			}
		}
	}

	return result
}

// count - returns how many cells of w hold side and how many hold its opponent.
func (w window) count(cells *[entity.CellCount]entity.Mark, side entity.Mark) (own, opp int) {
	for _, index := range w {
		switch cells[index] {
		case entity.EmptyCell:
		case side:
			own++
		default:
			opp++
		}
	}

	return own, opp
}

// threats - marks every empty cell that would complete a window for side.
func threats(board *entity.Board, side entity.Mark) (cells [entity.CellCount]bool, n int) {
	grid := board.Cells()

	for _, w := range windows {
		own, opp := w.count(&grid, side)
		if own != entity.WinLength-1 || opp != 0 {
			continue
		}

		for _, index := range w {
			if grid[index] == entity.EmptyCell && !cells[index] {
				cells[index] = true
				n++
			}
		}
	}

	return cells, n
}
