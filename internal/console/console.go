package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const spinnerCharSet = 14

type line struct {
	text string
	err  error
}

// Console is the terminal front end: it draws the board and reads the human's moves.
type Console struct {
	in  io.Reader
	out io.Writer

	lines     chan line
	readOnce  sync.Once
	done      chan struct{}
	closeOnce sync.Once
	finished  chan struct{}

	spinner *spinner.Spinner
	warn    *color.Color
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       in,
		out:      out,
		lines:    make(chan line, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		spinner:  spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(out)),
		warn:     color.New(color.FgYellow),
	}
}

// ReadMove - prompts for a move and waits for a line of input.
func (that *Console) ReadMove(ctx context.Context) (entity.Move, error) {
	fmt.Fprint(that.out, Prompt)

	text, err := that.nextLine(ctx)
	if err != nil {
		return entity.Move{}, err
	}

	return ParseMove(text)
}

// Confirm - asks a yes or no question. Any answer other than y or yes is no.
func (that *Console) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(that.out, "%s (y/n): ", question)

	text, err := that.nextLine(ctx)
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(text))

	return answer == "y" || answer == "yes", nil
}

func (that *Console) nextLine(ctx context.Context) (string, error) {
	that.readOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		fmt.Fprintln(that.out)
		return "", fmt.Errorf("input interrupted: %w", ctx.Err())
	case next, ok := <-that.lines:
		if !ok || errors.Is(next.err, io.EOF) {
			fmt.Fprintln(that.out)
			return "", fmt.Errorf("%w: input closed", apperror.ErrQuit)
		}

		if next.err != nil {
			fmt.Fprintln(that.out)
			return "", fmt.Errorf("failed to read input: %w", next.err)
		}

		return next.text, nil
	}
}

func (that *Console) readLines() {
	defer close(that.finished)
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if !that.send(line{text: scanner.Text()}) {
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}

	that.send(line{err: err})
}

// send - hands a line to ReadMove, giving up once the console is closed.
func (that *Console) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

// Close - stops the input reader. A reader blocked inside a read of the input
// stops after that read returns.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// Reject - explains why the last entered move was refused.
func (that *Console) Reject(err error) {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		that.warn.Fprintf(that.out, "Please enter row and column as two numbers from 1 to %d, for example 5,5.\n", entity.BoardSize)
	case errors.Is(err, apperror.ErrInvalidMove):
		that.warn.Fprintln(that.out, "That cell is already taken, pick another one.")
	default:
		that.warn.Fprintln(that.out, err)
	}
}

func (that *Console) ShowBoard(board *entity.Board) {
	fmt.Fprintln(that.out)
	fmt.Fprint(that.out, RenderBoard(board))
	fmt.Fprintln(that.out)
}

func (that *Console) ShowMove(player *entity.Player, move entity.Move) {
	fmt.Fprintf(that.out, "%s (%s) plays %s\n", player.Name, player.Mark, FormatMove(move))
}

func (that *Console) StartThinking(player *entity.Player) {
	that.spinner.Suffix = fmt.Sprintf(" %s is thinking...", player.Name)
	that.spinner.Start()
}

func (that *Console) StopThinking() {
	that.spinner.Stop()
}

func (that *Console) ShowOutcome(game *entity.Game) {
	outcome := game.Outcome()

	winner := game.PlayerFor(outcome.Winner())
	if winner == nil {
		fmt.Fprintf(that.out, "Game over: %s.\n", outcome)
		return
	}

	fmt.Fprintf(that.out, "Game over: %s (%s) wins!\n", winner.Name, winner.Mark)
}
