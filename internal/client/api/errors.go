package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is matching across packages. The typed errors
// below unwrap to these where it makes sense.
var (
	ErrUnavailable  = errors.New("gateway unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports locally detectable bad input. It is returned before
// any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthError reports that the gateway rejected the credentials or token
// (HTTP 401/403).
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return ErrUnauthorized }

// ServerError reports a 5xx response from the gateway.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// RequestError reports a non-auth 4xx rejection (bad payload, missing
// resource, quota exceeded and so on).
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// NetworkError reports that no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "gateway unreachable: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrUnavailable }

// DisplayMessage extracts a human-readable message from any error produced by
// this package, falling back to the provided generic text. The UI layer uses
// it to populate the session's ambient error field.
func DisplayMessage(err error, fallback string) string {
	var (
		ve *ValidationError
		ae *AuthError
		se *ServerError
		re *RequestError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &ae):
		if ae.Message != "" {
			return ae.Message
		}
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
	case errors.As(err, &re):
		if re.Message != "" {
			return re.Message
		}
	}
	return fallback
}

// normalizeMessage derives a display-ready message from a rejection body.
// Gateway variants disagree on field naming: some send {"error": "..."},
// some {"message": "..."}, some field-keyed {"errors": {"email": "..."}}.
// Unrecognized shapes fall back to the HTTP status text.
func normalizeMessage(status int, env *envelope) string {
	if env != nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
		if len(env.Errors) > 0 {
			fields := make([]string, 0, len(env.Errors))
			for f := range env.Errors {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				parts = append(parts, f+": "+env.Errors[f])
			}
			return strings.Join(parts, "; ")
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}
