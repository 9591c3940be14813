package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNoAgent = errors.New("no agent for the side to move")

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type viewDep interface {
	ShowBoard(board *entity.Board)
	ShowMove(player *entity.Player, move entity.Move)
	StartThinking(player *entity.Player)
	StopThinking()
	ShowOutcome(game *entity.Game)
}

// GameManager runs the turn loop: it asks the agent of the side to move for a move,
// applies it and keeps a snapshot of the unfinished game in the repository.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepoDep
	view     viewDep
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, view viewDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		view:     view,
	}
}

// StartGame - creates and stores a new game between players.
func (that *GameManager) StartGame(ctx context.Context, players ...*entity.Player) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), players...)

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// ResumeGame - loads an unfinished game saved by an earlier Play.
func (that *GameManager) ResumeGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game)
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, id)
	}

	return game, nil
}

// Play - runs turns until the game ends and returns its outcome.
// When a player quits or ctx is cancelled the game stays saved and can be resumed.
func (that *GameManager) Play(ctx context.Context, game *entity.Game, agents map[entity.Mark]agent.Agent) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	that.view.ShowBoard(game.Board)

	for !game.IsFinished() {
		mark := game.Turn()

		player := game.PlayerFor(mark)
		if player == nil {
			return entity.InProgress, fmt.Errorf("%w: no player plays %s", ErrNoAgent, mark)
		}

		moveAgent, ok := agents[mark]
		if !ok {
			return entity.InProgress, fmt.Errorf("%w: %s", ErrNoAgent, mark)
		}

		move, err := that.chooseMove(ctx, player, moveAgent, game.Board)
		if errors.Is(err, apperror.ErrQuit) {
			log.Info("player quit", "mark", mark.String())
			return entity.InProgress, err
		}

		if err != nil {
			return entity.InProgress, fmt.Errorf("failed to choose move for %s: %w", mark, err)
		}

		if _, err = game.MakeTurn(mark, move); err != nil {
			return entity.InProgress, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn made", "mark", mark.String(), "move", move.String())

		that.view.ShowMove(player, move)
		that.view.ShowBoard(game.Board)

		if game.IsFinished() {
			break
		}

		if err = that.updateGame(ctx, game); err != nil {
			return entity.InProgress, fmt.Errorf("failed to save game: %w", err)
		}
	}

	that.deleteGame(ctx, game)
	that.view.ShowOutcome(game)

	log.Info("game finished", "outcome", game.Outcome().String(), "moves", game.Board.Count())

	return game.Outcome(), nil
}

func (that *GameManager) chooseMove(ctx context.Context, player *entity.Player, moveAgent agent.Agent, board *entity.Board) (entity.Move, error) {
	if !player.IsComputer() {
		return moveAgent.ChooseMove(ctx, board)
	}

	that.view.StartThinking(player)
	defer that.view.StopThinking()

	return moveAgent.ChooseMove(ctx, board)
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Debug("game deleted", "game_id", game.ID)
}
