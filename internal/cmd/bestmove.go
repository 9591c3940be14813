package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// tictactoe bestmove
func BestMove(opts *rootOptions) *cobra.Command {
	var (
		depth  int
		toMove string
	)

	cmd := &cobra.Command{
		Use:   "bestmove [FILE]",
		Short: "Print the computer's move for a position",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`bestmove reads a board of nine lines with '.', 'X' and 'O'
			from FILE, or from stdin when no FILE is given, and prints the
			move the computer would play as row,col counted from 1.

			The side to move is X when both sides have the same number
			of marks and O otherwise, unless --to-move says so.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := opts.load()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("depth") {
				depth = conf.Engine.Depth
			}
			if depth < 1 {
				return fmt.Errorf("depth must be at least 1, got %d", depth)
			}

			grid, err := readGrid(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			board, err := parsePosition(grid, toMove)
			if err != nil {
				return err
			}

			searcher := engine.NewSearcher(engine.WithDepth(depth), engine.WithLogger(logger))

			result, err := searcher.Search(board)
			if err != nil {
				return fmt.Errorf("failed to search: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s score %d\n", board.ToMove(), console.FormatMove(result.Move), result.Score)

			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Search depth in plies")
	cmd.Flags().StringVar(&toMove, "to-move", "", "Side to move, X or O")

	return cmd
}

func readGrid(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read board from stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read board: %w", err)
	}

	return string(data), nil
}

// parsePosition - parses grid, inferring the side to move from the mark counts when toMove is empty.
func parsePosition(grid, toMove string) (*entity.Board, error) {
	side := entity.PlayerX
	if toMove != "" {
		var err error
		if side, err = entity.ParseSide(toMove); err != nil {
			return nil, fmt.Errorf("failed to parse side to move: %w", err)
		}
	}

	board, err := entity.ParseBoard(grid, side)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	if toMove != "" {
		return board, nil
	}

	var xCount, oCount int
	for _, cell := range board.Cells() {
		switch cell {
		case entity.PlayerX:
			xCount++
		case entity.PlayerO:
			oCount++
		}
	}

	if xCount > oCount {
		return entity.ParseBoard(grid, entity.PlayerO)
	}

	return board, nil
}
