package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wynnapi/wapi"
)

var (
	guildByPrefix bool
	guildMembers  bool
)

var guildCmd = &cobra.Command{
	Use:   "guild <name>",
	Short: "Show a guild",
	Long:  `Show a guild by name, or by prefix with --prefix. Use --members to list the roster.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGuild,
}

var guildsCmd = &cobra.Command{
	Use:   "guilds",
	Short: "List all guilds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		return emit(ctx, cmd.OutOrStdout(), client.Guilds.List(ctx), view{
			columns: []string{"_key", "prefix", "uuid"},
		})
	},
}

var territoriesCmd = &cobra.Command{
	Use:   "territories",
	Short: "List territories and the guilds holding them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		return emit(ctx, cmd.OutOrStdout(), client.Guilds.Territories(ctx), view{
			columns: []string{"_key", "guild.name", "guild.prefix", "acquired"},
		})
	},
}

func init() {
	guildCmd.Flags().BoolVar(&guildByPrefix, "prefix", false, "look the guild up by prefix")
	guildCmd.Flags().BoolVar(&guildMembers, "members", false, "list members instead of the summary")

	rootCmd.AddCommand(guildCmd)
	rootCmd.AddCommand(guildsCmd)
	rootCmd.AddCommand(territoriesCmd)
}

// memberRow flattens a guild member with its rank for listing
type memberRow struct {
	Rank string `json:"rank"`
	Name string `json:"name"`
	wapi.GuildMember
}

func runGuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	var res wapi.Result[wapi.Guild]
	if guildByPrefix {
		res = client.Guilds.ByPrefixWithUsernames(ctx, args[0])
	} else {
		res = client.Guilds.ByNameWithUsernames(ctx, args[0])
	}

	if !guildMembers {
		return emit(ctx, cmd.OutOrStdout(), res, view{
			columns: []string{"name", "prefix", "level", "territories", "wars", "online", "members.total", "created"},
		})
	}

	members := wapi.Map(res, func(g wapi.Guild) ([]memberRow, error) {
		var rows []memberRow
		for _, rank := range g.Members.ByRank() {
			for _, name := range slices.Sorted(maps.Keys(rank.Members)) {
				rows = append(rows, memberRow{Rank: rank.Name, Name: name, GuildMember: rank.Members[name]})
			}
		}
		return rows, nil
	})

	title := args[0]
	if g, err := res.Data(); err == nil {
		title = fmt.Sprintf("%s [%s]", g.Name, g.Prefix)
	}
	return emit(ctx, cmd.OutOrStdout(), members, view{
		title:   title,
		columns: []string{"rank", "name", "online", "server", "contributed", "joined"},
	})
}
