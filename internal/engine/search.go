package engine

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// infinity is larger than any score the search can return.
const infinity = 2 * WinScore

type SearchResult struct {
	Move  entity.Move
	Score int
	Stats Stats
}

type Option func(s *Searcher)

// WithDepth - sets the search depth in plies. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Searcher picks moves with a depth-limited alpha-beta search over Evaluate.
// A Searcher holds no per-search state and can be reused for any number of boards.
type Searcher struct {
	depth  int
	logger *slog.Logger
}

func NewSearcher(options ...Option) *Searcher {
	searcher := &Searcher{
		depth:  DefaultDepth,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(searcher)
	}

	searcher.logger = searcher.logger.With("component", "engine")

	return searcher
}

func (that *Searcher) Depth() int {
	return that.depth
}

// Search - returns the best move for the side to move. The caller's board is never modified.
func (that *Searcher) Search(board *entity.Board) (SearchResult, error) {
	log := that.logger.With("method", "Search")

	if board.Full() {
		return SearchResult{}, apperror.ErrNoMoveAvailable
	}

	if board.Outcome().IsTerminal() {
		return SearchResult{}, apperror.ErrGameFinished
	}

	start := time.Now()
	side := board.ToMove()
	work := board.Clone()
	stats := Stats{Depth: that.depth}

	best := SearchResult{Score: -infinity}
	alpha := -infinity

	for _, move := range candidateMoves(work, side) {
		mustApply(work, move)
		score := that.alphaBeta(work, that.depth-1, alpha, infinity, false, side, &stats)
		mustUndo(work, move)

		if score > best.Score {
			best.Move, best.Score = move, score
		}

		alpha = max(alpha, best.Score)
	}

	stats.Elapsed = time.Since(start)
	best.Stats = stats

	log.Debug("search finished", "side", side.String(), "move", best.Move.String(), "score", best.Score, "stats", stats)

	return best, nil
}

// Score - returns the search value of board from the side to move's point of view.
// At depth 0 this is Evaluate.
func (that *Searcher) Score(board *entity.Board, depth int) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("depth must not be negative, got %d", depth)
	}

	var stats Stats

	return that.alphaBeta(board.Clone(), depth, -infinity, infinity, true, board.ToMove(), &stats), nil
}

func (that *Searcher) alphaBeta(board *entity.Board, depth, alpha, beta int, maximizing bool, side entity.Mark, stats *Stats) int {
	stats.Nodes++

	if score, ok := terminalScore(board, depth, side); ok {
		stats.Leaves++
		return score
	}

	if depth == 0 {
		stats.Leaves++
		return Evaluate(board, side)
	}

	moves := orderMoves(board.LegalMoves())

	if maximizing {
		best := -infinity
		for _, move := range moves {
			mustApply(board, move)
			best = max(best, that.alphaBeta(board, depth-1, alpha, beta, false, side, stats))
			mustUndo(board, move)

			alpha = max(alpha, best)
			if alpha >= beta {
				stats.Cutoffs++
				break
			}
		}

		return best
	}

	best := infinity
	for _, move := range moves {
		mustApply(board, move)
		best = min(best, that.alphaBeta(board, depth-1, alpha, beta, true, side, stats))
		mustUndo(board, move)

		beta = min(beta, best)
		if alpha >= beta {
			stats.Cutoffs++
			break
		}
	}

	return best
}

// terminalScore - scores a decided board for side. Faster wins and slower losses score higher.
func terminalScore(board *entity.Board, depth int, side entity.Mark) (int, bool) {
	outcome := entity.InProgress

	if last, ok := board.LastMove(); ok {
		switch {
		case board.IsWinningMove(last):
			outcome = entity.WinFor(board.At(last))
		case board.Full():
			outcome = entity.Draw
		}
	} else {
		outcome = board.Outcome()
	}

	switch outcome {
	case entity.InProgress:
		return 0, false
	case entity.Draw:
		return 0, true
	case entity.WinFor(side):
		return WinScore + depth, true
	default:
		return -(WinScore + depth), true
	}
}

func mustApply(board *entity.Board, move entity.Move) {
	if err := board.Apply(move); err != nil {
		panic(fmt.Errorf("failed to apply searched move: %w", err))
	}
}

func mustUndo(board *entity.Board, move entity.Move) {
	if err := board.Undo(move); err != nil {
		panic(fmt.Errorf("failed to undo searched move: %w", err))
	}
}
