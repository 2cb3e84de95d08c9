// Package common contains shared constants and small utilities used across
// DocuChat client components.
package common

const (
	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix prefixes the token value in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a client-generated id for request correlation.
	RequestIDHeader = "X-Request-Id"

	// AppDirName is the directory under the user config dir that holds
	// client state such as the persisted session token.
	AppDirName = "docuchat"

	// TokenFileName is the well-known file name of the persisted token.
	TokenFileName = "token"
)
