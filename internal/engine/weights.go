package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	// WinScore dominates every heuristic score the evaluator can produce.
	WinScore = 1_000_000

	// DefensePercent scales the opponent's windows relative to our own.
	// Below 100 the evaluator prefers building its own lines over spoiling the opponent's.
	DefensePercent = 80

	DefaultDepth = 3
)

// PatternWeights - value of a window holding only one side's marks, indexed by mark count.
var PatternWeights = [entity.WinLength]int{0, 1, 10, 50}

// BlockWeights - bonus for sharing a window with the opponent, indexed by the opponent's mark count.
var BlockWeights = [entity.WinLength]int{0, 0, 4, 20}

// PositionWeights - static per-cell value, highest in the centre.
var PositionWeights = [entity.BoardSize][entity.BoardSize]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 2, 2, 2, 2, 2, 1, 0},
	{0, 1, 2, 3, 3, 3, 2, 1, 0},
	{0, 1, 2, 3, 4, 3, 2, 1, 0},
	{0, 1, 2, 3, 3, 3, 2, 1, 0},
	{0, 1, 2, 2, 2, 2, 2, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

func defense(value int) int {
	return value * DefensePercent / 100
}
