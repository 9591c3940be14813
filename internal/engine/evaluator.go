package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Evaluate - scores board from perspective's point of view, positive is good for perspective.
// Won boards score ±WinScore and drawn boards score 0. The score is not antisymmetric:
// opponent windows are discounted by DefensePercent.
func Evaluate(board *entity.Board, perspective entity.Mark) int {
	cells := board.Cells()
	score := 0

	for _, w := range windows {
		own, opp := w.count(&cells, perspective)

		switch {
		case own == entity.WinLength:
			return WinScore
		case opp == entity.WinLength:
			return -WinScore
		}

		score += windowScore(own, opp)
	}

	if board.Full() {
		return 0
	}

	return score + positionScore(&cells, perspective)
}

func windowScore(own, opp int) int {
	switch {
	case opp == 0:
		return PatternWeights[own]
	case own == 0:
		return -defense(PatternWeights[opp])
	default:
		// dead window: only the blocking value remains
		return BlockWeights[opp] - defense(BlockWeights[own])
	}
}

func positionScore(cells *[entity.CellCount]entity.Mark, perspective entity.Mark) int {
	score := 0

	for index, cell := range cells {
		weight := PositionWeights[index/entity.BoardSize][index%entity.BoardSize]

		switch cell {
		case entity.EmptyCell:
		case perspective:
			score += weight
		default:
			score -= weight
		}
	}

	return score
}
