package credentials

import "context"

// Repository is the key/value capability the session layer needs.
//
// Get reports a missing key as ("", false, nil). Delete ignores keys that
// do not exist. SetMany writes all values or none.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
