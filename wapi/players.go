package wapi

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// PlayerService covers the /v3/player endpoints
type PlayerService struct {
	client *Client
}

// Get retrieves basic player information
func (s *PlayerService) Get(ctx context.Context, username string) Result[Player] {
	return Get[Player](ctx, s.client, playerPath(username))
}

// GetFull retrieves player information including character details
func (s *PlayerService) GetFull(ctx context.Context, username string) Result[Player] {
	return Get[Player](ctx, s.client, playerPath(username), P("fullResult", "True"))
}

// GetMany retrieves several players concurrently, keyed by username
func (s *PlayerService) GetMany(ctx context.Context, usernames []string) map[string]Result[Player] {
	return fetchEach(ctx, usernames, s.Get)
}

// Characters lists a player's characters
func (s *PlayerService) Characters(ctx context.Context, username string) Result[[]Character] {
	res := Get[CharacterList](ctx, s.client, playerPath(username)+"/character")
	return Map(res, func(list CharacterList) ([]Character, error) {
		return list.Characters, nil
	})
}

// Character retrieves a single character of a player
func (s *PlayerService) Character(ctx context.Context, username, character string) Result[Character] {
	return Get[Character](ctx, s.client, characterPath(username, character))
}

// CharacterAbilities retrieves a character's ability tree
func (s *PlayerService) CharacterAbilities(ctx context.Context, username, character string) Result[AbilityMap] {
	return Get[AbilityMap](ctx, s.client, characterPath(username, character)+"/ability")
}

// Online lists the players currently online
func (s *PlayerService) Online(ctx context.Context) Result[OnlinePlayers] {
	return Get[OnlinePlayers](ctx, s.client, "/v3/player")
}

// OnlineCount returns the number of players online
func (s *PlayerService) OnlineCount(ctx context.Context) Result[int] {
	return Map(s.Online(ctx), func(o OnlinePlayers) (int, error) {
		return o.Count, nil
	})
}

// OnlineNames returns the usernames of players online
func (s *PlayerService) OnlineNames(ctx context.Context) Result[[]string] {
	return Map(s.Online(ctx), func(o OnlinePlayers) ([]string, error) {
		return o.Players, nil
	})
}

// PlayerID normalizes a player identifier. UUIDs, with or without dashes,
// come back in canonical dashed form; anything else is taken as a username.
func PlayerID(identifier string) (id string, isUUID bool) {
	if u, err := uuid.Parse(identifier); err == nil {
		return u.String(), true
	}
	return identifier, false
}

func playerPath(identifier string) string {
	id, _ := PlayerID(identifier)
	return "/v3/player/" + url.PathEscape(id)
}

func characterPath(username, character string) string {
	return playerPath(username) + "/character/" + url.PathEscape(character)
}
