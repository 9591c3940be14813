package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

// Opponent - returns the other side. EmptyCell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	parsed, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// ParseMark - parses "X", "O" (case-insensitive) or "." into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case ".", "":
		return EmptyCell, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, s)
	}
}

// ParseSide - like ParseMark, but only accepts a playing side.
func ParseSide(s string) (Mark, error) {
	mark, err := ParseMark(s)
	if err != nil {
		return EmptyCell, err
	}

	if mark == EmptyCell {
		return EmptyCell, fmt.Errorf("%w: %q is not a side", apperror.ErrUnknownMark, s)
	}

	return mark, nil
}
