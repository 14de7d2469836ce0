package ai

import "errors"

// ErrMissingAPIKey is returned when a provider is called without credentials
var ErrMissingAPIKey = errors.New("api key not configured")

// KeyFunc returns the current API key for a provider.
// Keys can change at runtime through the config endpoint.
type KeyFunc func() string

// StaticKey returns a KeyFunc for a fixed key
func StaticKey(key string) KeyFunc {
	return func() string { return key }
}
