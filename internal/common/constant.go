// Package common contains constants shared by the client packages.
package common

// Persisted credential keys. They match the keys used by the mobile clients
// so a store can be shared between them.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	CurrentUserKey  = "currentUser"
)

// SessionKeys lists every key removed on logout or terminal refresh failure.
var SessionKeys = []string{AccessTokenKey, RefreshTokenKey, CurrentUserKey}

// Header names set on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// GRPCAuthorizationKey is the metadata key carrying the bearer token on
// gRPC calls. gRPC lowercases metadata keys.
const GRPCAuthorizationKey = "authorization"
