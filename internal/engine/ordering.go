package engine

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var centre = entity.NewMove(entity.BoardSize/2, entity.BoardSize/2)

func centreDistance(move entity.Move) int {
	return abs(move.Row-centre.Row) + abs(move.Col-centre.Col)
}

// orderMoves - sorts moves centre-first in place. Moves at the same distance keep their order.
func orderMoves(moves []entity.Move) []entity.Move {
	slices.SortStableFunc(moves, func(a, b entity.Move) int {
		return centreDistance(a) - centreDistance(b)
	})

	return moves
}

// candidateMoves - returns the ordered root moves for side. When side cannot win at once
// but the opponent can, only the cells that stop the opponent are kept.
func candidateMoves(board *entity.Board, side entity.Mark) []entity.Move {
	moves := orderMoves(board.LegalMoves())

	if _, wins := threats(board, side); wins > 0 {
		return moves
	}

	blocks, n := threats(board, side.Opponent())
	if n == 0 {
		return moves
	}

	filtered := make([]entity.Move, 0, n)
	for _, move := range moves {
		if blocks[move.Row*entity.BoardSize+move.Col] {
			filtered = append(filtered, move)
		}
	}

	return filtered
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
