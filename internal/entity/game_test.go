package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", NewHumanPlayer("you", PlayerX), NewComputerPlayer("engine", PlayerO))

		// When: X plays the centre
		outcome, err := game.MakeTurn(PlayerX, NewMove(4, 4))
		require.NoError(t, err)

		// Then: the game continues with O to move
		assert.Equal(t, InProgress, outcome)
		assert.Equal(t, PlayerO, game.Turn())
		assert.Equal(t, StatusOngoing, game.Status())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where it's X's turn
		game := NewGame("123")

		// When: O tries to move
		_, err := game.MakeTurn(PlayerO, NewMove(0, 0))

		// Then: ErrNotYourTurn is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, 0, game.Board.Count())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: X already holds the centre
		game := NewGame("123")
		_, err := game.MakeTurn(PlayerX, NewMove(4, 4))
		require.NoError(t, err)

		// When: O plays the same cell
		_, err = game.MakeTurn(PlayerO, NewMove(4, 4))

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, PlayerO, game.Turn())
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: X has three in a row and it's X's turn
		board, err := ParseBoard(`
			XXX......
			OOO......
			.........
			.........
			.........
			.........
			.........
			.........
			.........`, PlayerX)
		require.NoError(t, err)
		game := &Game{ID: "123", Board: board}

		// When: X completes the row
		outcome, err := game.MakeTurn(PlayerX, NewMove(0, 3))
		require.NoError(t, err)

		// Then: X wins and the game is finished
		assert.Equal(t, XWins, outcome)
		assert.True(t, game.IsFinished())
		assert.Equal(t, StatusFinished, game.Status())

		// And: no further turns are accepted
		_, err = game.MakeTurn(PlayerO, NewMove(8, 8))
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_PlayerFor(t *testing.T) {
	human := NewHumanPlayer("you", PlayerO)
	computer := NewComputerPlayer("engine", PlayerX)
	game := NewGame("123", human, computer)

	assert.Equal(t, computer, game.PlayerFor(PlayerX))
	assert.True(t, game.PlayerFor(PlayerX).IsComputer())
	assert.Equal(t, human, game.PlayerFor(PlayerO))
	assert.Nil(t, game.PlayerFor(EmptyCell))
}
