package wapi

import (
	"context"
	"net/url"
)

// LeaderboardService covers the /v3/leaderboard endpoints
type LeaderboardService struct {
	client *Client
}

// Get retrieves a leaderboard by type
func (s *LeaderboardService) Get(ctx context.Context, boardType string) Result[Leaderboard] {
	return Get[Leaderboard](ctx, s.client, "/v3/leaderboard/"+url.PathEscape(boardType))
}

func (s *LeaderboardService) Player(ctx context.Context) Result[Leaderboard] {
	return s.Get(ctx, "player")
}

func (s *LeaderboardService) Guild(ctx context.Context) Result[Leaderboard] {
	return s.Get(ctx, "guild")
}

func (s *LeaderboardService) PvP(ctx context.Context) Result[Leaderboard] {
	return s.Get(ctx, "pvp")
}

// Types lists the available leaderboard types
func (s *LeaderboardService) Types(ctx context.Context) Result[Value] {
	return s.client.GetValue(ctx, "/v3/leaderboard/types")
}
