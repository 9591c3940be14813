package cmd

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// rootOptions - flags shared by every command.
type rootOptions struct {
	configPath string
	trace      bool
}

func (that *rootOptions) load() (*config.Config, *slog.Logger, error) {
	conf, err := config.Load(that.configPath)
	if err != nil {
		return nil, nil, err
	}

	return conf, app.NewLogger(conf, that.trace), nil
}

func Root() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Four in a row on a 9x9 board against the computer",
		Long: heredoc.Doc(`tictactoe is a 9x9 tic-tac-toe where four marks in a row,
			column or diagonal win. The computer looks ahead with an
			alpha-beta search over a heuristic evaluation of the board.

			Settings are read from --config, else from tictactoe/config.yml
			in the XDG config directories, and can be overridden with
			environment variables such as ENGINE_DEPTH or LOG_LEVEL.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the config file")
	root.PersistentFlags().BoolVarP(&opts.trace, "trace", "t", false, "Show debug logs on stderr")

	root.AddCommand(Play(opts))
	root.AddCommand(SelfPlay(opts))
	root.AddCommand(BestMove(opts))

	return root
}
