package wapi

import (
	"context"
	"net/url"
)

// AbilityService covers the ability and aspect endpoints
type AbilityService struct {
	client *Client
}

func (s *AbilityService) All(ctx context.Context) Result[Value] {
	return s.client.GetValue(ctx, "/v3/abilities")
}

func (s *AbilityService) Get(ctx context.Context, name string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/abilities/"+url.PathEscape(name))
}

// ByClass lists the abilities of one class
func (s *AbilityService) ByClass(ctx context.Context, className string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/abilities", P("class", className))
}

func (s *AbilityService) Aspects(ctx context.Context) Result[Value] {
	return s.client.GetValue(ctx, "/v3/aspects")
}

func (s *AbilityService) Aspect(ctx context.Context, name string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/aspects/"+url.PathEscape(name))
}
