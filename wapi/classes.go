package wapi

import (
	"context"
	"net/url"
)

// Playable classes
const (
	ClassWarrior  = "warrior"
	ClassArcher   = "archer"
	ClassMage     = "mage"
	ClassAssassin = "assassin"
	ClassShaman   = "shaman"
)

// ClassService covers the /v3/classes endpoints
type ClassService struct {
	client *Client
}

// All lists every class
func (s *ClassService) All(ctx context.Context) Result[Value] {
	return s.client.GetValue(ctx, "/v3/classes")
}

// Get retrieves one class by name
func (s *ClassService) Get(ctx context.Context, name string) Result[Class] {
	return Get[Class](ctx, s.client, "/v3/classes/"+url.PathEscape(name))
}

func (s *ClassService) Warrior(ctx context.Context) Result[Class]  { return s.Get(ctx, ClassWarrior) }
func (s *ClassService) Archer(ctx context.Context) Result[Class]   { return s.Get(ctx, ClassArcher) }
func (s *ClassService) Mage(ctx context.Context) Result[Class]     { return s.Get(ctx, ClassMage) }
func (s *ClassService) Assassin(ctx context.Context) Result[Class] { return s.Get(ctx, ClassAssassin) }
func (s *ClassService) Shaman(ctx context.Context) Result[Class]   { return s.Get(ctx, ClassShaman) }
