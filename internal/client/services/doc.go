// Package services contains the typed WillBank service clients used by the
// CLI. Every service goes through the same client.HTTPClient, so bearer
// attachment and token refresh are shared.
package services
