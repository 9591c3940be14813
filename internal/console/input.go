package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const Prompt = "Enter your move (row,col) [1-9,1-9]: "

// ParseMove - parses "row,col" with 1-indexed coordinates into a 0-indexed move.
// "q" and "quit" return ErrQuit.
func ParseMove(text string) (entity.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	if text == "q" || text == "quit" {
		return entity.Move{}, apperror.ErrQuit
	}

	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return entity.Move{}, fmt.Errorf("%w: want row,col, got %q", apperror.ErrMalformedInput, text)
	}

	row, err := parseCoordinate(parts[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to parse row: %w", err)
	}

	col, err := parseCoordinate(parts[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to parse column: %w", err)
	}

	return entity.NewMove(row-1, col-1), nil
}

func parseCoordinate(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, strings.TrimSpace(text))
	}

	if value < 1 || value > entity.BoardSize {
		return 0, fmt.Errorf("%w: %d is outside 1-%d", apperror.ErrMalformedInput, value, entity.BoardSize)
	}

	return value, nil
}

// FormatMove - formats move the way ParseMove reads it.
func FormatMove(move entity.Move) string {
	return fmt.Sprintf("%d,%d", move.Row+1, move.Col+1)
}
