package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrNoMoveAvailable = errors.New("no move available")
	ErrUndoUnderflow   = errors.New("undo without matching apply")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrGameNotFound    = errors.New("game not found")
	ErrQuit            = errors.New("player quit the game")
	ErrMalformedInput  = errors.New("malformed move input")
	ErrUnknownMark     = errors.New("unknown mark")
)
