package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// App holds the wired components a command works with.
type App struct {
	Logger  *slog.Logger
	Config  *config.Config
	Console *console.Console
	Games   *usecase.GameManager

	// Persistent is true when games outlive the process.
	Persistent bool
}

// NewLogger - builds the JSON logger on stderr so it never mixes with the board.
func NewLogger(conf *config.Config, trace bool) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	if trace {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// RunApp - wires the application and passes it to run. SIGINT and SIGTERM cancel the context given to run.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, run func(ctx context.Context, app *App) error) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	view := console.New(in, out)
	defer view.Close()

	app := &App{
		Logger:     logger,
		Config:     conf,
		Console:    view,
		Games:      usecase.NewGameManager(logger, gameRepo, view),
		Persistent: conf.Redis.Enabled,
	}

	return run(ctx, app)
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	client, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(client), client.Close, nil
}

// NewSearcher - a searcher logging through the app logger.
func (that *App) NewSearcher(depth int) *engine.Searcher {
	return engine.NewSearcher(engine.WithDepth(depth), engine.WithLogger(that.Logger))
}

// Agents - one agent per player of game. Computers search depths[mark] plies,
// or the configured depth when no depth is given. Humans read from the console.
func (that *App) Agents(game *entity.Game, depths map[entity.Mark]int) map[entity.Mark]agent.Agent {
	agents := make(map[entity.Mark]agent.Agent, len(game.Players))

	for _, player := range game.Players {
		if !player.IsComputer() {
			agents[player.Mark] = agent.NewHuman(that.Console)
			continue
		}

		depth, ok := depths[player.Mark]
		if !ok {
			depth = that.Config.Engine.Depth
		}

		agents[player.Mark] = agent.NewComputer(that.Logger, that.NewSearcher(depth))
	}

	return agents
}
