package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wynnapi/wapi"
)

var (
	itemType   string
	itemRarity string
	itemPage   int
	itemSearch string
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Browse the item database",
	Long: `Browse the item database one page at a time, or narrow it down by
type, rarity or a name search.`,
	Args: cobra.NoArgs,
	RunE: runItems,
}

var itemColumns = []string{"_key", "type", "subType", "rarity", "requirements.level"}

func init() {
	itemsCmd.Flags().StringVar(&itemType, "type", "", "item type (weapons, armour, accessories, ...)")
	itemsCmd.Flags().StringVar(&itemRarity, "rarity", "", "item rarity (legendary, mythic, ...)")
	itemsCmd.Flags().IntVar(&itemPage, "page", 0, "database page")
	itemsCmd.Flags().StringVarP(&itemSearch, "search", "s", "", "search items by name")

	rootCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()

	switch {
	case itemSearch != "":
		return emit(ctx, out, client.Items.QuickSearch(ctx, itemSearch), view{columns: itemColumns})
	case itemType != "":
		return emit(ctx, out, pageResults(client.Items.ByType(ctx, itemType)), view{columns: itemColumns})
	case itemRarity != "":
		return emit(ctx, out, pageResults(client.Items.ByRarity(ctx, itemRarity)), view{columns: itemColumns})
	}

	var res wapi.Result[wapi.ItemDatabase]
	if itemPage > 0 {
		res = client.Items.Database(ctx, itemPage)
	} else {
		res = client.Items.Database(ctx)
	}

	if db, err := res.Data(); err == nil {
		logger.Debug().
			Int("page", db.Controller.Current).
			Int("pages", db.Controller.Pages).
			Bool("has_next", db.Controller.HasNext()).
			Msg("Item database page")
	}

	items := wapi.Map(res, func(db wapi.ItemDatabase) (map[string]wapi.Item, error) {
		return db.Results, nil
	})
	return emit(ctx, out, items, view{
		columns: itemColumns,
		title:   pageTitle(res),
	})
}

// pageResults unwraps the results of a paginated response that is not modeled
func pageResults(res wapi.Result[wapi.Value]) wapi.Result[wapi.Value] {
	return wapi.Map(res, func(v wapi.Value) (wapi.Value, error) {
		if results, ok := v.Get("results"); ok {
			return results, nil
		}
		return v, nil
	})
}

func pageTitle(res wapi.Result[wapi.ItemDatabase]) string {
	db, err := res.Data()
	if err != nil || db.Controller.Pages == 0 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d", db.Controller.Current, db.Controller.Pages)
}
