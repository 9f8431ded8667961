package wapi

import (
	"context"
	"net/url"
)

// Member identifier modes accepted by the guild endpoints
const (
	IdentifierUsername = "username"
	IdentifierUUID     = "uuid"
	IdentifierName     = "name"
)

// GuildService covers the /v3/guild endpoints
type GuildService struct {
	client *Client
}

// ByName retrieves a guild by name. An optional identifier selects how
// members are keyed ("username" or "uuid").
func (s *GuildService) ByName(ctx context.Context, name string, identifier ...string) Result[Guild] {
	return Get[Guild](ctx, s.client, "/v3/guild/"+url.PathEscape(name), identifierParam(identifier)...)
}

// ByPrefix retrieves a guild by its prefix
func (s *GuildService) ByPrefix(ctx context.Context, prefix string, identifier ...string) Result[Guild] {
	return Get[Guild](ctx, s.client, "/v3/guild/prefix/"+url.PathEscape(prefix), identifierParam(identifier)...)
}

// ByNameWithUsernames keys members by username
func (s *GuildService) ByNameWithUsernames(ctx context.Context, name string) Result[Guild] {
	return s.ByName(ctx, name, IdentifierUsername)
}

// ByNameWithUUIDs keys members by UUID
func (s *GuildService) ByNameWithUUIDs(ctx context.Context, name string) Result[Guild] {
	return s.ByName(ctx, name, IdentifierUUID)
}

// ByPrefixWithUsernames keys members by username
func (s *GuildService) ByPrefixWithUsernames(ctx context.Context, prefix string) Result[Guild] {
	return s.ByPrefix(ctx, prefix, IdentifierUsername)
}

// ByPrefixWithUUIDs keys members by UUID
func (s *GuildService) ByPrefixWithUUIDs(ctx context.Context, prefix string) Result[Guild] {
	return s.ByPrefix(ctx, prefix, IdentifierUUID)
}

// List retrieves every guild. The optional identifier ("uuid" or "name")
// selects the map keys.
func (s *GuildService) List(ctx context.Context, identifier ...string) Result[GuildList] {
	return Get[GuildList](ctx, s.client, "/v3/guild/list", identifierParam(identifier)...)
}

// ListByUUID keys the guild list by UUID
func (s *GuildService) ListByUUID(ctx context.Context) Result[GuildList] {
	return s.List(ctx, IdentifierUUID)
}

// ListByName keys the guild list by name
func (s *GuildService) ListByName(ctx context.Context) Result[GuildList] {
	return s.List(ctx, IdentifierName)
}

// Territories lists every territory and its owner
func (s *GuildService) Territories(ctx context.Context) Result[Territories] {
	return Get[Territories](ctx, s.client, "/v3/guild/list/territory")
}

func identifierParam(identifier []string) []Param {
	if len(identifier) == 0 || identifier[0] == "" {
		return nil
	}
	return []Param{P("identifier", identifier[0])}
}
