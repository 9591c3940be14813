package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	humanName    = "You"
	computerName = "Computer"
)

// tictactoe play
func Play(opts *rootOptions) *cobra.Command {
	var (
		depth  int
		human  string
		resume string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game between you and the computer. Enter
			moves as row,col with both numbers from 1 to 9, or q to quit.

			X always moves first. After a finished game you can start
			another one. With redis enabled an unfinished game is kept
			and can be continued later with --resume.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("depth") {
				conf.Engine.Depth = depth
			}
			if cmd.Flags().Changed("human") {
				conf.Game.HumanMark = human
			}
			if err = conf.Validate(); err != nil {
				return err
			}

			humanMark, err := conf.Game.Mark()
			if err != nil {
				return err
			}

			return app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout(), func(ctx context.Context, a *app.App) error {
				game, err := startOrResume(ctx, a, resume, humanMark)
				if err != nil {
					return err
				}

				return playSession(ctx, a, game, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Search depth of the computer in plies")
	cmd.Flags().StringVar(&human, "human", "", "Side you play, X or O")
	cmd.Flags().StringVar(&resume, "resume", "", "ID of a saved game to continue")

	return cmd
}

// playSession - plays game, then new games against the same side for as long as the player wants more.
func playSession(ctx context.Context, a *app.App, game *entity.Game, out io.Writer) error {
	for {
		humanMark := entity.PlayerX
		if player := humanPlayer(game); player != nil {
			humanMark = player.Mark
			fmt.Fprintf(out, "You play %s. Type q to quit.\n", player.Mark)
		}

		_, err := a.Games.Play(ctx, game, a.Agents(game, nil))
		if errors.Is(err, apperror.ErrQuit) {
			if a.Persistent {
				fmt.Fprintf(out, "Game saved, continue with: tictactoe play --resume %s\n", game.ID)
			}

			return nil
		}

		if err != nil {
			return err
		}

		again, err := a.Console.Confirm(ctx, "Play again?")
		if errors.Is(err, apperror.ErrQuit) || (err == nil && !again) {
			return nil
		}

		if err != nil {
			return err
		}

		if game, err = startOrResume(ctx, a, "", humanMark); err != nil {
			return err
		}
	}
}

func startOrResume(ctx context.Context, a *app.App, id string, humanMark entity.Mark) (*entity.Game, error) {
	if id != "" {
		return a.Games.ResumeGame(ctx, id)
	}

	return a.Games.StartGame(ctx,
		entity.NewHumanPlayer(humanName, humanMark),
		entity.NewComputerPlayer(computerName, humanMark.Opponent()),
	)
}

func humanPlayer(game *entity.Game) *entity.Player {
	for _, player := range game.Players {
		if !player.IsComputer() {
			return player
		}
	}

	return nil
}
