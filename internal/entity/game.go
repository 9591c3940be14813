package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is a single play session. Its status is always derived from the board.
type Game struct {
	ID      string    `json:"id"`
	Board   *Board    `json:"board"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string, players ...*Player) *Game {
	return &Game{
		ID:      id,
		Board:   NewBoard(),
		Players: players,
	}
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) Status() string {
	if that.IsFinished() {
		return StatusFinished
	}

	return StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsTerminal()
}

func (that *Game) Turn() Mark {
	return that.Board.ToMove()
}

// PlayerFor - returns the participant playing mark, or nil.
func (that *Game) PlayerFor(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// MakeTurn - applies move for playerMark and returns the resulting outcome.
func (that *Game) MakeTurn(playerMark Mark, move Move) (Outcome, error) {
	if that.IsFinished() {
		return that.Outcome(), apperror.ErrGameFinished
	}

	if that.Turn() != playerMark {
		return InProgress, fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn())
	}

	if err := that.Board.Apply(move); err != nil {
		return InProgress, fmt.Errorf("failed to apply move: %w", err)
	}

	return that.Outcome(), nil
}
