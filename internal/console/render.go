package console

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var markColors = map[entity.Mark]color.Attribute{
	entity.PlayerX: color.FgRed,
	entity.PlayerO: color.FgBlue,
}

// RenderBoard - draws board with 1-indexed row and column numbers.
// The last move is underlined and a winning line is highlighted.
func RenderBoard(board *entity.Board) string {
	highlighted := make(map[entity.Move]bool)
	for _, move := range board.WinningLine() {
		highlighted[move] = true
	}

	last, hasLast := board.LastMove()

	var sb strings.Builder

	sb.WriteString("   ")
	for col := 1; col <= entity.BoardSize; col++ {
		sb.WriteString(" " + strconv.Itoa(col))
	}
	sb.WriteByte('\n')

	for row := 0; row < entity.BoardSize; row++ {
		sb.WriteString(" " + strconv.Itoa(row+1) + " ")

		for col := 0; col < entity.BoardSize; col++ {
			move := entity.NewMove(row, col)
			mark := board.At(move)

			var attrs []color.Attribute
			if attr, ok := markColors[mark]; ok {
				attrs = append(attrs, attr, color.Bold)
			}
			if highlighted[move] {
				attrs = append(attrs, color.BgYellow)
			}
			if hasLast && move == last {
				attrs = append(attrs, color.Underline)
			}

			sb.WriteByte(' ')
			if len(attrs) == 0 {
				sb.WriteString(mark.String())
				continue
			}
			sb.WriteString(color.New(attrs...).Sprint(mark.String()))
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
