package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/wynnapi/wapi"
)

var leaderboardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [type]",
	Short: "Show a leaderboard",
	Long: `Show a leaderboard in rank order. Without a type the available
leaderboard types are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVarP(&leaderboardLimit, "limit", "n", 0, "only show the first N entries")

	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if len(args) == 0 {
		return emit(ctx, cmd.OutOrStdout(), client.Leaderboards.Types(ctx), view{title: "Leaderboard types"})
	}

	ranked := wapi.Map(client.Leaderboards.Get(ctx, args[0]), func(lb wapi.Leaderboard) ([]wapi.LeaderboardEntry, error) {
		entries := lb.Ranked()
		if leaderboardLimit > 0 && len(entries) > leaderboardLimit {
			entries = entries[:leaderboardLimit]
		}
		return entries, nil
	})

	return emit(ctx, cmd.OutOrStdout(), ranked, view{
		title:   args[0],
		columns: []string{"rank", "name", "prefix", "score", "class"},
	})
}
