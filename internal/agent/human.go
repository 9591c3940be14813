package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveSource - where a human's moves come from, usually the console.
type MoveSource interface {
	// ReadMove - blocks until the player enters a move.
	ReadMove(ctx context.Context) (entity.Move, error)
	// Reject - tells the player why the last move was refused.
	Reject(err error)
}

type Human struct {
	source MoveSource
}

func NewHuman(source MoveSource) *Human {
	return &Human{source: source}
}

// ChooseMove - reads moves until one is legal on board. Malformed, occupied and
// out of range moves are rejected and read again. Any other error ends the turn.
func (that *Human) ChooseMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	for {
		move, err := that.source.ReadMove(ctx)
		if errors.Is(err, apperror.ErrMalformedInput) {
			that.source.Reject(err)
			continue
		}

		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		if err = board.Validate(move); err != nil {
			that.source.Reject(err)
			continue
		}

		return move, nil
	}
}
