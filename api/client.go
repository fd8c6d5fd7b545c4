// Package api holds the request pipeline shared by every murray service client.
//
// Files:
//
//	config.go   - default service URLs
//	types.go    - envelope and shared DTOs (Health)
//	errors.go   - error taxonomy (InvalidURLParams, BadRequest, APIError, JSONParseError)
//	query.go    - URL builder (path segments + ordered query params)
//	options.go  - client options (logger, http client, user agent)
//	base.go     - Client: issues GET/POST and decodes the {"data": T} envelope
//	endpoint.go - mutable base URL + typed Fetch/FetchList/Send helpers
//
// Usage:
//
//	client := api.NewClient(api.WithLogger(logger))
//	u, err := api.BuildURL(baseURL, []string{"tx", txid}, nil)
//	body, err := client.Get(ctx, u)
//	tx, err := api.Decode[Transaction](body)
//
// Service clients usually go through an Endpoint instead:
//
//	tx, err := api.Fetch[Transaction](ctx, client, endpoint, []string{"tx", txid}, nil)
package api
