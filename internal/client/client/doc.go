// Package client is the authenticated transport shared by every WillBank
// service client.
//
// # Overview
//
// HTTPClient sends a Request through an explicit middleware chain:
//
//	request-id -> bearer -> refresh-on-401 -> HTTP round trip
//
// The bearer layer reads the access token from the Session and attaches it
// as "Authorization: Bearer <token>" unless the path is on the public
// allowlist (login, register, refresh by default). The refresh layer reacts
// to a 401 on the original attempt by asking the Coordinator for a new token
// and re-sending the request once; a 401 on the retry is returned to the
// caller. Non-2xx responses become *ServerError after the chain returns.
//
// # Refresh
//
// Coordinator deduplicates refreshes with singleflight: any number of
// concurrent 401s produce one POST <auth-base>/refresh. The refresh runs
// detached from the callers' contexts, so a caller hitting its own deadline
// gets ErrTimeout while the others still receive the new token.
//
// When the server rejects the refresh, or no refresh token is stored,
// the session is purged, the OnSessionExpired hooks run and callers get
// ErrSessionExpired. A refresh that cannot reach the server returns
// ErrNetwork or ErrTimeout and keeps the stored credentials.
//
// # gRPC
//
// UnaryAuthInterceptor applies the same attach/refresh/retry-once rule to
// gRPC unary calls and shares the Coordinator with the HTTP pipeline.
//
// # Errors
//
// Match with errors.Is: ErrNetwork, ErrTimeout, ErrSessionExpired,
// context.Canceled. Match *ServerError with errors.As.
package client
