package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Computer struct {
	logger   *slog.Logger
	searcher *engine.Searcher
}

func NewComputer(logger *slog.Logger, searcher *engine.Searcher) *Computer {
	return &Computer{
		logger:   logger.With("component", "computer"),
		searcher: searcher,
	}
}

type searchReply struct {
	result engine.SearchResult
	err    error
}

// ChooseMove - runs the search on a copy of board and returns its move.
// A cancelled context returns at once and leaves the search to finish in the background.
func (that *Computer) ChooseMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "ChooseMove")

	if err := ctx.Err(); err != nil {
		return entity.Move{}, fmt.Errorf("search interrupted: %w", err)
	}

	snapshot := board.Clone()
	replies := make(chan searchReply, 1)
	// snapshot is owned by the goroutine, so the search may outlive a cancelled call.
	go func() {
		result, err := that.searcher.Search(snapshot)
		replies <- searchReply{result: result, err: err}
	}()

	var reply searchReply
	select {
	case <-ctx.Done():
		return entity.Move{}, fmt.Errorf("search interrupted: %w", ctx.Err())
	case reply = <-replies:
	}

	if reply.err != nil {
		return entity.Move{}, fmt.Errorf("failed to search: %w", reply.err)
	}

	if err := board.Validate(reply.result.Move); err != nil {
		return entity.Move{}, fmt.Errorf("search returned an illegal move: %w", err)
	}

	log.Info("move chosen", "move", reply.result.Move.String(), "score", reply.result.Score, "stats", reply.result.Stats)

	return reply.result.Move, nil
}
