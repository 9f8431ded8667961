package cmd

import (
	"github.com/spf13/cobra"
)

var (
	newsLimit    int
	newsCategory string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search players, guilds and items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		return emit(ctx, cmd.OutOrStdout(), client.Search.All(ctx, args[0]), view{title: args[0]})
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the latest news posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if newsCategory != "" {
			return emit(ctx, cmd.OutOrStdout(), client.News.ByCategory(ctx, newsCategory), newsView)
		}
		return emit(ctx, cmd.OutOrStdout(), client.News.Latest(ctx, newsLimit), newsView)
	},
}

var newsView = view{columns: []string{"date", "title", "author", "category"}}

var classesCmd = &cobra.Command{
	Use:   "classes [name]",
	Short: "Show playable classes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if len(args) == 1 {
			return emit(ctx, cmd.OutOrStdout(), client.Classes.Get(ctx, args[0]), view{
				columns: []string{"name", "description", "playstyle"},
			})
		}
		return emit(ctx, cmd.OutOrStdout(), client.Classes.All(ctx), view{title: "Classes"})
	},
}

func init() {
	newsCmd.Flags().IntVarP(&newsLimit, "limit", "n", 0, "maximum number of posts")
	newsCmd.Flags().StringVar(&newsCategory, "category", "", "only show one category (updates, patches, announcements)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(classesCmd)
}
