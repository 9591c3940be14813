package agent

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Agent picks the next move for the side to move on board. Implementations must not modify board.
type Agent interface {
	ChooseMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}
