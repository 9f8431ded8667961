package wapi

import (
	"context"
	"net/url"
	"strconv"
)

// ItemService covers the /v3/item endpoints
type ItemService struct {
	client *Client
}

// Database retrieves one page of the item database. Without a page argument
// the API returns the first page.
func (s *ItemService) Database(ctx context.Context, page ...int) Result[ItemDatabase] {
	var params []Param
	if len(page) > 0 {
		params = append(params, P("page", strconv.Itoa(page[0])))
	}
	return Get[ItemDatabase](ctx, s.client, "/v3/item", params...)
}

// DatabaseFull retrieves the whole database in one response
func (s *ItemService) DatabaseFull(ctx context.Context) Result[map[string]Item] {
	return Get[map[string]Item](ctx, s.client, "/v3/item", P("fullResult", "true"))
}

// QuickSearch looks items up by name
func (s *ItemService) QuickSearch(ctx context.Context, query string) Result[map[string]Item] {
	return Get[map[string]Item](ctx, s.client, "/v3/item/search/"+url.PathEscape(query))
}

// Metadata lists the identifications and filters known to the item search
func (s *ItemService) Metadata(ctx context.Context) Result[ItemMetadata] {
	return Get[ItemMetadata](ctx, s.client, "/v3/item/metadata")
}

// Search would run the advanced item search, which needs a POST body.
// The client is read-only, so it always fails.
func (s *ItemService) Search(ctx context.Context, filters map[string]any) Result[map[string]Item] {
	err := &ValidationError{Message: "advanced item search requires POST and is not supported; use QuickSearch"}
	return FailureErr[map[string]Item](err)
}

// Get looks an item up by internal name using the quick search
func (s *ItemService) Get(ctx context.Context, internalName string) Result[Item] {
	return Map(s.QuickSearch(ctx, internalName), func(items map[string]Item) (Item, error) {
		if item, ok := items[internalName]; ok {
			return item, nil
		}
		for _, item := range items {
			if item.InternalName == internalName {
				return item, nil
			}
		}
		return Item{}, &NotFoundError{ResourceType: "Item", ResourceID: internalName}
	})
}

// ByType filters the database by item type
func (s *ItemService) ByType(ctx context.Context, itemType string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/item", P("type", itemType))
}

// ByRarity filters the database by rarity
func (s *ItemService) ByRarity(ctx context.Context, rarity string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/item", P("rarity", rarity))
}

// ByLevelRange filters the database by level requirement
func (s *ItemService) ByLevelRange(ctx context.Context, minLevel, maxLevel int) Result[Value] {
	return s.client.GetValue(ctx, "/v3/item",
		P("levelMin", strconv.Itoa(minLevel)),
		P("levelMax", strconv.Itoa(maxLevel)),
	)
}

func (s *ItemService) Weapons(ctx context.Context) Result[Value]     { return s.ByType(ctx, "weapons") }
func (s *ItemService) Armour(ctx context.Context) Result[Value]      { return s.ByType(ctx, "armour") }
func (s *ItemService) Accessories(ctx context.Context) Result[Value] { return s.ByType(ctx, "accessories") }
func (s *ItemService) Consumables(ctx context.Context) Result[Value] { return s.ByType(ctx, "consumables") }
func (s *ItemService) Ingredients(ctx context.Context) Result[Value] { return s.ByType(ctx, "ingredients") }
func (s *ItemService) Materials(ctx context.Context) Result[Value]   { return s.ByType(ctx, "materials") }
func (s *ItemService) Legendary(ctx context.Context) Result[Value]   { return s.ByRarity(ctx, "legendary") }
func (s *ItemService) Mythic(ctx context.Context) Result[Value]      { return s.ByRarity(ctx, "mythic") }
