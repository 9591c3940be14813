package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	BoardSize = 9
	WinLength = 4
	CellCount = BoardSize * BoardSize
)

// Directions - the four line directions a run can follow: row, column, diagonal, anti-diagonal.
var Directions = [4]Move{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// Board is the 9x9 grid together with the side to move and the stack of applied moves.
// The zero value is not usable, create boards with NewBoard or ParseBoard.
type Board struct {
	cells   [CellCount]Mark
	toMove  Mark
	marks   int
	history []Move
}

func NewBoard() *Board {
	return &Board{toMove: PlayerX}
}

// ParseBoard - builds a board from a grid of '.', 'X' and 'O' characters, whitespace is ignored.
// The parsed board has no move history, so its cells cannot be undone.
func ParseBoard(grid string, toMove Mark) (*Board, error) {
	if toMove != PlayerX && toMove != PlayerO {
		return nil, fmt.Errorf("%w: side to move must be X or O", apperror.ErrUnknownMark)
	}

	board := &Board{toMove: toMove}

	index := 0
	for _, char := range grid {
		if char == ' ' || char == '\t' || char == '\n' || char == '\r' {
			continue
		}

		if index >= CellCount {
			return nil, fmt.Errorf("%w: grid has more than %d cells", apperror.ErrMalformedInput, CellCount)
		}

		mark, err := ParseMark(string(char))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cell %d: %w", index, err)
		}

		board.cells[index] = mark
		if mark != EmptyCell {
			board.marks++
		}
		index++
	}

	if index != CellCount {
		return nil, fmt.Errorf("%w: grid has %d cells, want %d", apperror.ErrMalformedInput, index, CellCount)
	}

	return board, nil
}

func (that *Board) At(move Move) Mark {
	if !move.InBounds() {
		return EmptyCell
	}

	return that.cells[move.index()]
}

func (that *Board) Cells() [CellCount]Mark {
	return that.cells
}

func (that *Board) ToMove() Mark {
	return that.toMove
}

// Count - returns the number of marks on the board.
func (that *Board) Count() int {
	return that.marks
}

func (that *Board) Full() bool {
	return that.marks == CellCount
}

func (that *Board) History() []Move {
	return append([]Move(nil), that.history...)
}

// LastMove - returns the most recently applied move, if any.
func (that *Board) LastMove() (Move, bool) {
	if len(that.history) == 0 {
		return Move{}, false
	}

	return that.history[len(that.history)-1], true
}

// Validate - checks that move targets an empty cell inside the board.
func (that *Board) Validate(move Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s is out of range", apperror.ErrInvalidMove, move)
	}

	if that.cells[move.index()] != EmptyCell {
		return fmt.Errorf("%w: %s is already occupied", apperror.ErrInvalidMove, move)
	}

	return nil
}

// Apply - marks the cell with the side to move and passes the turn.
func (that *Board) Apply(move Move) error {
	if err := that.Validate(move); err != nil {
		return err
	}

	that.cells[move.index()] = that.toMove
	that.marks++
	that.history = append(that.history, move)
	that.toMove = that.toMove.Opponent()

	return nil
}

// Undo - reverses the most recent Apply, which must have been made with move.
func (that *Board) Undo(move Move) error {
	last, ok := that.LastMove()
	if !ok {
		return fmt.Errorf("%w: no moves to undo", apperror.ErrUndoUnderflow)
	}

	if last != move {
		return fmt.Errorf("%w: last applied move is %s, not %s", apperror.ErrUndoUnderflow, last, move)
	}

	that.history = that.history[:len(that.history)-1]
	that.cells[move.index()] = EmptyCell
	that.marks--
	that.toMove = that.toMove.Opponent()

	return nil
}

// LegalMoves - returns every empty cell in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, CellCount-that.marks)
	for i, cell := range that.cells {
		if cell == EmptyCell {
			moves = append(moves, moveAt(i))
		}
	}

	return moves
}

func (that *Board) Outcome() Outcome {
	if line := that.WinningLine(); len(line) > 0 {
		return WinFor(that.At(line[0]))
	}

	if that.Full() {
		return Draw
	}

	return InProgress
}

// WinningLine - returns every cell of the first run of WinLength or more equal marks,
// scanning row-major. The run is reported in full, so a run of five has five cells.
func (that *Board) WinningLine() []Move {
	for i, cell := range that.cells {
		if cell == EmptyCell {
			continue
		}

		start := moveAt(i)
		for _, dir := range Directions {
			// only count from the first cell of a run
			if that.At(Move{Row: start.Row - dir.Row, Col: start.Col - dir.Col}) == cell {
				continue
			}

			length := that.runLength(start, dir, cell)
			if length < WinLength {
				continue
			}

			line := make([]Move, 0, length)
			for step := 0; step < length; step++ {
				line = append(line, Move{Row: start.Row + step*dir.Row, Col: start.Col + step*dir.Col})
			}

			return line
		}
	}

	return nil
}

// IsWinningMove - reports whether the mark on move is part of a run of WinLength or more.
// Only the lines through move are inspected.
func (that *Board) IsWinningMove(move Move) bool {
	mark := that.At(move)
	if mark == EmptyCell {
		return false
	}

	for _, dir := range Directions {
		back := Move{Row: -dir.Row, Col: -dir.Col}
		if that.runLength(move, dir, mark)+that.runLength(move, back, mark)-1 >= WinLength {
			return true
		}
	}

	return false
}

// runLength - counts consecutive cells holding mark, starting at from and walking along dir.
func (that *Board) runLength(from, dir Move, mark Mark) int {
	length := 0
	for cur := from; cur.InBounds() && that.cells[cur.index()] == mark; cur = (Move{Row: cur.Row + dir.Row, Col: cur.Col + dir.Col}) {
		length++
	}

	return length
}

func (that *Board) Clone() *Board {
	clone := *that
	clone.history = append(make([]Move, 0, len(that.history)+CellCount-that.marks), that.history...)

	return &clone
}

// String - renders the grid as nine lines of '.', 'X' and 'O'.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount + BoardSize)

	for i, cell := range that.cells {
		sb.WriteString(cell.String())
		if i%BoardSize == BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

type boardJSON struct {
	Cells   string `json:"cells"`
	ToMove  Mark   `json:"to_move"`
	History []Move `json:"history,omitempty"`
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{
		Cells:   strings.ReplaceAll(that.String(), "\n", ""),
		ToMove:  that.toMove,
		History: that.history,
	})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := ParseBoard(raw.Cells, raw.ToMove)
	if err != nil {
		return fmt.Errorf("failed to parse board cells: %w", err)
	}

	if len(raw.History) > 0 {
		if board, err = replay(board, raw.History); err != nil {
			return err
		}
	}

	*that = *board

	return nil
}

// replay - rebuilds a board from an empty one by applying history, which must reproduce parsed exactly.
func replay(parsed *Board, history []Move) (*Board, error) {
	board := NewBoard()

	for i, move := range history {
		if err := board.Apply(move); err != nil {
			return nil, fmt.Errorf("%w: history move %d: %w", apperror.ErrMalformedInput, i, err)
		}
	}

	if board.cells != parsed.cells {
		return nil, fmt.Errorf("%w: history does not match the board cells", apperror.ErrMalformedInput)
	}

	if board.toMove != parsed.toMove {
		return nil, fmt.Errorf("%w: history leaves %s to move, board says %s", apperror.ErrMalformedInput, board.toMove, parsed.toMove)
	}

	return board, nil
}
