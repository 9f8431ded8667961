// Package wapi provides a typed client for the Wynncraft v3 API.
//
// The API is read-only and unauthenticated. Every call returns a Result that
// is either a success carrying the decoded payload or a failure carrying an
// error, so callers branch on the Result instead of on a raw error.
//
// # Usage
//
//	client, err := wapi.NewClient(
//		wapi.WithRequestTimeout(15*time.Second),
//		wapi.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	client.Players.Get(ctx, "Salted").
//		OnSuccess(func(p wapi.Player) { fmt.Println(p.Username, p.Rank) }).
//		OnFailure(func(err error) { fmt.Println(err) })
//
// Endpoints without a modeled schema return a Value, an ordered JSON tree.
// Any endpoint can be called directly with the generic helpers:
//
//	res := wapi.Get[wapi.Guild](ctx, client, "/v3/guild/Avicia")
//	future := wapi.Fetch[wapi.Value](ctx, client, "/v3/map/markers")
//
// # Rate limits
//
// The client records the RateLimit-* headers of every response. The state is
// observational only; RateLimitStatus reports it and a 429 response becomes a
// RateLimitError. Transport failures and 429s are retried with exponential
// backoff up to WithMaxRetries times.
//
// # Error Handling
//
// Failures carry one of the typed errors:
//
//   - NetworkError: transport failure (connection, timeout, cancellation)
//   - RateLimitError: HTTP 429, matches ErrRateLimited
//   - APIError: any other non-200 status, 404 matches ErrNotFound
//   - DecodeError: a 200 response that did not match the target type
//   - MappingError: a Map transform that failed
package wapi
