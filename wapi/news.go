package wapi

import (
	"context"
	"strconv"
)

// News categories
const (
	NewsUpdates       = "updates"
	NewsPatches       = "patches"
	NewsAnnouncements = "announcements"
)

// NewsService covers the /v3/news endpoint
type NewsService struct {
	client *Client
}

// Latest returns the most recent news, optionally limited
func (s *NewsService) Latest(ctx context.Context, limit ...int) Result[[]NewsItem] {
	var params []Param
	if len(limit) > 0 && limit[0] > 0 {
		params = append(params, P("limit", strconv.Itoa(limit[0])))
	}
	return Get[[]NewsItem](ctx, s.client, "/v3/news", params...)
}

// ByCategory returns news of one category
func (s *NewsService) ByCategory(ctx context.Context, category string) Result[[]NewsItem] {
	return Get[[]NewsItem](ctx, s.client, "/v3/news", P("category", category))
}

func (s *NewsService) Updates(ctx context.Context) Result[[]NewsItem] {
	return s.ByCategory(ctx, NewsUpdates)
}

func (s *NewsService) PatchNotes(ctx context.Context) Result[[]NewsItem] {
	return s.ByCategory(ctx, NewsPatches)
}

func (s *NewsService) Announcements(ctx context.Context) Result[[]NewsItem] {
	return s.ByCategory(ctx, NewsAnnouncements)
}
