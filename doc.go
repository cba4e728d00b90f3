// Package dribbble is a client for the Dribbble v2 REST API.
//
// The client handles the OAuth2 authorization-code flow and exposes one
// method per remote endpoint. Request bodies and query parameters are
// converted to the API's snake_case wire format before encoding, and
// response payloads come back with camelCase keys.
//
// # Usage
//
//	client, err := dribbble.New(dribbble.Config{
//		ClientID:     "id",
//		ClientSecret: "secret",
//		Scope:        dribbble.ScopePublic,
//	})
//	if err != nil {
//		// ...
//	}
//
//	// Redirect the user to the authorization URL, then exchange the
//	// code delivered to the redirect URI.
//	url := client.AuthorizationURL(dribbble.WithRedirectURI("https://app/cb"))
//	payload, err := client.ExchangeCode(ctx, code, "https://app/cb")
//	client.SetAccessToken(payload["accessToken"].(string))
//
//	shot, err := client.GetShot(ctx, "471756")
//
// Methods requiring authentication fail with ErrMissingToken before any
// network I/O when no token has been installed. Transport failures and
// non-2xx responses propagate to the caller unmodified; the client does not
// retry, paginate, or cache.
package dribbble
