package wapi

import (
	"context"
	"net/url"
)

// SearchService covers the /v3/search endpoints
type SearchService struct {
	client *Client
}

// All searches players, guilds and items at once
func (s *SearchService) All(ctx context.Context, query string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/search/"+url.PathEscape(query))
}

func (s *SearchService) Players(ctx context.Context, query string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/search/player/"+url.PathEscape(query))
}

func (s *SearchService) Guilds(ctx context.Context, query string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/search/guild/"+url.PathEscape(query))
}

func (s *SearchService) Items(ctx context.Context, query string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/search/item/"+url.PathEscape(query))
}
