package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, grid string, toMove Mark) *Board {
	t.Helper()

	board, err := ParseBoard(grid, toMove)
	require.NoError(t, err)

	return board
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Empty board is in progress", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: the game continues
		assert.Equal(t, InProgress, outcome)
	})

	t.Run("Three in a row is not a win", func(t *testing.T) {
		// Given: X holds three cells of a row with both ends open
		board := mustParse(t, `
			.........
			.........
			.........
			.........
			..XXX....
			.........
			....O....
			....O....
			....O....`, PlayerX)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: nobody has won yet
		assert.Equal(t, InProgress, outcome)
	})

	t.Run("Row run at an odd offset wins", func(t *testing.T) {
		// Given: X holds columns 3 to 6 of row 2
		board := mustParse(t, `
			.........
			.........
			...XXXX..
			.........
			.........
			.........
			.........
			.........
			.........`, PlayerO)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: X wins
		assert.Equal(t, XWins, outcome)
	})

	t.Run("Column run wins", func(t *testing.T) {
		// Given: O holds rows 5 to 8 of the last column
		board := mustParse(t, `
			.........
			.........
			.........
			.........
			.........
			........O
			........O
			........O
			........O`, PlayerX)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: O wins
		assert.Equal(t, OWins, outcome)
	})

	t.Run("Diagonal run wins", func(t *testing.T) {
		// Given: X holds a diagonal starting away from the main diagonal
		board := mustParse(t, `
			.........
			.X.......
			..X......
			...X.....
			....X....
			.........
			.........
			.........
			.........`, PlayerO)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: X wins
		assert.Equal(t, XWins, outcome)
	})

	t.Run("Anti-diagonal run wins", func(t *testing.T) {
		// Given: O holds an anti-diagonal ending on the bottom edge
		board := mustParse(t, `
			.........
			.........
			.........
			.........
			.........
			........O
			.......O.
			......O..
			.....O...`, PlayerX)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: O wins
		assert.Equal(t, OWins, outcome)
	})

	t.Run("Run longer than four still wins", func(t *testing.T) {
		// Given: X holds five in a row
		board := mustParse(t, `
			.........
			.........
			.........
			.........
			XXXXX....
			.........
			.........
			.........
			.........`, PlayerO)

		// When: computing the outcome and the winning line
		outcome := board.Outcome()
		line := board.WinningLine()

		// Then: X wins and the whole run is reported
		assert.Equal(t, XWins, outcome)
		assert.Len(t, line, 5)
		assert.Equal(t, NewMove(4, 0), line[0])
		assert.Equal(t, NewMove(4, 4), line[4])
	})

	t.Run("Full board without a run is a draw", func(t *testing.T) {
		// Given: a full board where no mark has four aligned
		board := mustParse(t, `
			XXXOOOXXX
			OOOXXXOOO
			XXXOOOXXX
			OOOXXXOOO
			XXXOOOXXX
			OOOXXXOOO
			XXXOOOXXX
			OOOXXXOOO
			XXXOOOXXX`, PlayerO)

		// When: computing the outcome
		outcome := board.Outcome()

		// Then: it is a draw
		assert.True(t, board.Full())
		assert.Equal(t, Draw, outcome)
	})
}

func TestBoard_IsWinningMove(t *testing.T) {
	// Given: X fills the gap of X X _ X on row 0
	board := mustParse(t, `
		XX.X.....
		OOO......
		.........
		.........
		.........
		.........
		.........
		.........
		.........`, PlayerX)
	require.NoError(t, board.Apply(NewMove(0, 2)))

	// Then: the move completes a run of four and the neighbour does not
	assert.True(t, board.IsWinningMove(NewMove(0, 2)))
	assert.False(t, board.IsWinningMove(NewMove(1, 2)))
	assert.False(t, board.IsWinningMove(NewMove(5, 5)))
}

func TestBoard_ApplyUndo(t *testing.T) {
	t.Run("Apply then undo restores the board", func(t *testing.T) {
		// Given: a board with a few moves played
		board := NewBoard()
		for _, move := range []Move{NewMove(4, 4), NewMove(3, 3), NewMove(0, 8)} {
			require.NoError(t, board.Apply(move))
		}

		for _, move := range board.LegalMoves() {
			cells, toMove, count := board.Cells(), board.ToMove(), board.Count()

			// When: a legal move is applied and undone
			require.NoError(t, board.Apply(move))
			require.NoError(t, board.Undo(move))

			// Then: the board is identical to its previous state
			require.Equal(t, cells, board.Cells())
			require.Equal(t, toMove, board.ToMove())
			require.Equal(t, count, board.Count())
		}
	})

	t.Run("Apply alternates sides", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: two moves are applied
		require.NoError(t, board.Apply(NewMove(0, 0)))
		require.NoError(t, board.Apply(NewMove(0, 1)))

		// Then: X and O were placed in turn and X is to move again
		assert.Equal(t, PlayerX, board.At(NewMove(0, 0)))
		assert.Equal(t, PlayerO, board.At(NewMove(0, 1)))
		assert.Equal(t, PlayerX, board.ToMove())
		assert.Equal(t, 2, board.Count())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with the centre taken
		board := NewBoard()
		require.NoError(t, board.Apply(NewMove(4, 4)))

		// When: O plays the same cell
		err := board.Apply(NewMove(4, 4))

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, PlayerX, board.At(NewMove(4, 4)))
		assert.Equal(t, PlayerO, board.ToMove())
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: moves outside the grid are applied
		errHigh := board.Apply(NewMove(9, 0))
		errNegative := board.Apply(NewMove(0, -1))

		// Then: ErrInvalidMove is returned for both
		require.ErrorIs(t, errHigh, apperror.ErrInvalidMove)
		require.ErrorIs(t, errNegative, apperror.ErrInvalidMove)
		assert.Equal(t, 0, board.Count())
	})

	t.Run("Error on undo without apply", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: undo is called
		err := board.Undo(NewMove(0, 0))

		// Then: ErrUndoUnderflow is returned
		require.ErrorIs(t, err, apperror.ErrUndoUnderflow)
	})

	t.Run("Error on undo out of order", func(t *testing.T) {
		// Given: two applied moves
		board := NewBoard()
		require.NoError(t, board.Apply(NewMove(0, 0)))
		require.NoError(t, board.Apply(NewMove(1, 1)))

		// When: the first move is undone before the second
		err := board.Undo(NewMove(0, 0))

		// Then: ErrUndoUnderflow is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrUndoUnderflow)
		assert.Equal(t, 2, board.Count())
	})
}

func TestBoard_LegalMoves(t *testing.T) {
	// Given: a board with two marks
	board := NewBoard()
	require.NoError(t, board.Apply(NewMove(0, 0)))
	require.NoError(t, board.Apply(NewMove(0, 2)))

	// When: listing legal moves
	moves := board.LegalMoves()

	// Then: every empty cell is listed in row-major order
	require.Len(t, moves, CellCount-2)
	assert.Equal(t, NewMove(0, 1), moves[0])
	assert.Equal(t, NewMove(0, 3), moves[1])
	assert.Equal(t, NewMove(8, 8), moves[len(moves)-1])
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewBoard()
	require.NoError(t, board.Apply(NewMove(4, 4)))
	clone := board.Clone()

	// When: the clone is mutated
	require.NoError(t, clone.Apply(NewMove(3, 3)))

	// Then: the original is untouched
	assert.Equal(t, EmptyCell, board.At(NewMove(3, 3)))
	assert.Equal(t, PlayerO, board.ToMove())
	assert.Len(t, board.History(), 1)
}

func TestParseBoard(t *testing.T) {
	t.Run("Error on short grid", func(t *testing.T) {
		_, err := ParseBoard("XO.", PlayerX)

		require.ErrorIs(t, err, apperror.ErrMalformedInput)
	})

	t.Run("Error on unknown character", func(t *testing.T) {
		_, err := ParseBoard("Z"+strings.Repeat(".", CellCount-1), PlayerX)

		require.ErrorIs(t, err, apperror.ErrUnknownMark)
	})

	t.Run("Error on empty side to move", func(t *testing.T) {
		_, err := ParseBoard(strings.Repeat(".", CellCount), EmptyCell)

		require.ErrorIs(t, err, apperror.ErrUnknownMark)
	})
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Round trip keeps the undo stack", func(t *testing.T) {
		// Given: a board with history
		board := NewBoard()
		require.NoError(t, board.Apply(NewMove(4, 4)))
		require.NoError(t, board.Apply(NewMove(2, 7)))

		// When: it goes through JSON
		data, err := json.Marshal(board)
		require.NoError(t, err)

		var restored Board
		require.NoError(t, json.Unmarshal(data, &restored))

		// Then: cells, side to move and the undo stack survive
		assert.Equal(t, board.Cells(), restored.Cells())
		assert.Equal(t, board.ToMove(), restored.ToMove())
		assert.Equal(t, 2, restored.Count())
		require.NoError(t, restored.Undo(NewMove(2, 7)))
		assert.Equal(t, PlayerO, restored.ToMove())
	})

	t.Run("Board without history is accepted", func(t *testing.T) {
		var restored Board
		err := json.Unmarshal([]byte(`{"cells":"X`+strings.Repeat(".", CellCount-1)+`","to_move":"O"}`), &restored)

		require.NoError(t, err)
		assert.Equal(t, 1, restored.Count())
		assert.Empty(t, restored.History())
	})

	single := `"cells":"X` + strings.Repeat(".", CellCount-1) + `"`
	corrupt := []struct {
		name string
		data string
	}{
		{name: "duplicated move", data: `{` + single + `,"to_move":"O","history":[{"row":0,"col":0},{"row":0,"col":0}]}`},
		{name: "history longer than marks", data: `{` + single + `,"to_move":"X","history":[{"row":0,"col":0},{"row":0,"col":1}]}`},
		{name: "marks out of turn", data: `{"cells":"O` + strings.Repeat(".", CellCount-1) + `","to_move":"X","history":[{"row":0,"col":0}]}`},
		{name: "wrong side to move", data: `{` + single + `,"to_move":"X","history":[{"row":0,"col":0}]}`},
		{name: "move outside the grid", data: `{` + single + `,"to_move":"O","history":[{"row":9,"col":0}]}`},
	}

	for _, tt := range corrupt {
		t.Run("Error on corrupt history: "+tt.name, func(t *testing.T) {
			// Given: a snapshot whose history cannot produce its cells
			var restored Board

			// When: it is unmarshalled
			err := json.Unmarshal([]byte(tt.data), &restored)

			// Then: ErrMalformedInput is returned
			require.ErrorIs(t, err, apperror.ErrMalformedInput)
		})
	}

	t.Run("Undo never drops below an empty board", func(t *testing.T) {
		// Given: a restored single-move game
		var restored Board
		require.NoError(t, json.Unmarshal([]byte(`{"cells":"X`+strings.Repeat(".", CellCount-1)+`","to_move":"O","history":[{"row":0,"col":0}]}`), &restored))

		// When: undoing more moves than were played
		require.NoError(t, restored.Undo(NewMove(0, 0)))
		err := restored.Undo(NewMove(0, 0))

		// Then: the second undo fails and the board stays consistent
		require.ErrorIs(t, err, apperror.ErrUndoUnderflow)
		assert.Equal(t, 0, restored.Count())
		assert.Len(t, restored.LegalMoves(), CellCount)
	})
}
