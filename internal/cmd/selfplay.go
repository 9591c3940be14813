package cmd

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// tictactoe selfplay
func SelfPlay(opts *rootOptions) *cobra.Command {
	var depthX, depthO int

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the computer play against itself",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`selfplay plays a full game between two computer players,
			each with its own search depth, and prints the result.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.load()
			if err != nil {
				return err
			}

			depths := map[entity.Mark]int{
				entity.PlayerX: conf.Engine.Depth,
				entity.PlayerO: conf.Engine.Depth,
			}
			if cmd.Flags().Changed("depth-x") {
				depths[entity.PlayerX] = depthX
			}
			if cmd.Flags().Changed("depth-o") {
				depths[entity.PlayerO] = depthO
			}

			for mark, depth := range depths {
				if depth < 1 {
					return fmt.Errorf("depth for %s must be at least 1, got %d", mark, depth)
				}
			}

			return app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout(), func(ctx context.Context, a *app.App) error {
				game, err := a.Games.StartGame(ctx,
					entity.NewComputerPlayer(fmt.Sprintf("Computer X (depth %d)", depths[entity.PlayerX]), entity.PlayerX),
					entity.NewComputerPlayer(fmt.Sprintf("Computer O (depth %d)", depths[entity.PlayerO]), entity.PlayerO),
				)
				if err != nil {
					return err
				}

				_, err = a.Games.Play(ctx, game, a.Agents(game, depths))

				return err
			})
		},
	}

	cmd.Flags().IntVar(&depthX, "depth-x", 0, "Search depth of X in plies")
	cmd.Flags().IntVar(&depthO, "depth-o", 0, "Search depth of O in plies")

	return cmd
}
