package entity

// Outcome is the state of a game as derived from its board.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func WinFor(mark Mark) Outcome {
	switch mark {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	default:
		return InProgress
	}
}

// Winner - returns the winning mark, or EmptyCell for a draw or an unfinished game.
func (o Outcome) Winner() Mark {
	switch o {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}
