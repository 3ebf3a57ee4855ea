// Package common contains shared constants and sentinel errors used across
// registry components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// APIKeyHeaderName is the gRPC metadata key carrying the public API key
// every client must present on every call.
const APIKeyHeaderName = "x-api-key"
