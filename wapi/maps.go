package wapi

import (
	"context"
	"net/url"
)

// MapService covers the /v3/map endpoints
type MapService struct {
	client *Client
}

func (s *MapService) Locations(ctx context.Context) Result[Value] {
	return s.client.GetValue(ctx, "/v3/map/locations")
}

func (s *MapService) Location(ctx context.Context, name string) Result[Value] {
	return s.client.GetValue(ctx, "/v3/map/location/"+url.PathEscape(name))
}

func (s *MapService) Markers(ctx context.Context) Result[Value] {
	return s.client.GetValue(ctx, "/v3/map/markers")
}

// Territories returns the territory map with owners
func (s *MapService) Territories(ctx context.Context) Result[Territories] {
	return Get[Territories](ctx, s.client, "/v3/map/territories")
}
