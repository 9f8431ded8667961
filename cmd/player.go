package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/wynnapi/wapi"
)

var playerFull bool

var playerCmd = &cobra.Command{
	Use:   "player <username|uuid> [username|uuid...]",
	Short: "Show player profiles",
	Long: `Show one or more player profiles. Players can be given by username or
by UUID, with or without dashes. Several players are fetched concurrently.
Use --full to include character details.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

var charactersCmd = &cobra.Command{
	Use:   "characters <username|uuid>",
	Short: "List a player's characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		res := client.Players.Characters(ctx, args[0])
		return emit(ctx, cmd.OutOrStdout(), res, view{
			title:   args[0],
			columns: []string{"name", "type", "level", "xp"},
		})
	},
}

var onlineCmd = &cobra.Command{
	Use:   "online",
	Short: "Show how many players are online",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		return emit(ctx, cmd.OutOrStdout(), client.Players.Online(ctx), view{
			columns: []string{"count"},
		})
	},
}

func init() {
	playerCmd.Flags().BoolVar(&playerFull, "full", false, "include character details")

	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(onlineCmd)
}

var playerColumns = []string{"username", "rank", "online", "server", "guild.name", "playtime", "lastJoin"}

func runPlayer(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if len(args) == 1 {
		var res wapi.Result[wapi.Player]
		if playerFull {
			res = client.Players.GetFull(ctx, args[0])
		} else {
			res = client.Players.Get(ctx, args[0])
		}
		return emit(ctx, cmd.OutOrStdout(), res, view{columns: playerColumns})
	}

	for _, arg := range args {
		if id, isUUID := wapi.PlayerID(arg); isUUID {
			logger.Debug().Str("player", arg).Str("uuid", id).Msg("looking player up by uuid")
		}
	}

	results := client.Players.GetMany(ctx, args)
	players := make([]wapi.Player, 0, len(results))
	for _, name := range args {
		res := results[name]
		if res.IsFailure() {
			logger.Warn().Str("player", name).Msg(res.ErrorMessage())
			continue
		}
		players = append(players, res.DataOrZero())
	}

	return emit(ctx, cmd.OutOrStdout(), wapi.Success(players), view{columns: playerColumns})
}
