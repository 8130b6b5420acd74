// file: service/errors.go

package service

import (
	"errors"
	"fmt"
	"go-auth-api/model"
	"strings"
	"time"
)

// ErrAuthHeaderMissing is returned when the Authorization header is absent or
// empty.
var ErrAuthHeaderMissing = errors.New("authorization header is missing")

// AuthSchemeMismatchError is returned when the Authorization header carries a
// different scheme than the endpoint expects (e.g. Bearer where Basic is
// required), or the right scheme without a usable "scheme value" shape.
type AuthSchemeMismatchError struct {
	Actual   string
	Expected string
}

func (e *AuthSchemeMismatchError) Error() string {
	if strings.EqualFold(e.Actual, e.Expected) {
		return fmt.Sprintf("malformed %s authorization header", e.Expected)
	}
	return fmt.Sprintf("unexpected authorization scheme %q, expected %q", e.Actual, e.Expected)
}

// CredentialsInvalidError is returned for any failed credential check. It
// deliberately does not distinguish an unknown login from a wrong secret.
type CredentialsInvalidError struct {
	Login string
}

func (e *CredentialsInvalidError) Error() string {
	return fmt.Sprintf("invalid credentials for %q", e.Login)
}

// TokenExpiredError is returned when a token's signature is valid but its
// expiry has passed.
type TokenExpiredError struct {
	Kind      model.TokenKind
	ExpiredAt time.Time
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("%s token expired at %s", e.Kind, e.ExpiredAt.Format(time.RFC3339))
}

// TokenMalformedError is returned for any structural or signature failure
// that is not a plain expiry.
type TokenMalformedError struct {
	Cause error
}

func (e *TokenMalformedError) Error() string {
	return fmt.Sprintf("malformed token: %v", e.Cause)
}

func (e *TokenMalformedError) Unwrap() error {
	return e.Cause
}

// TokenKindMismatchError is returned when a structurally valid token carries
// a different kind than the caller expects.
type TokenKindMismatchError struct {
	Actual   string
	Expected model.TokenKind
}

func (e *TokenKindMismatchError) Error() string {
	return fmt.Sprintf("token kind is %q, expected %q", e.Actual, e.Expected)
}

// TokenPayloadUnrecognizedError is returned when a token's payload does not
// satisfy the shape contract of its kind. Hint names what was missing.
type TokenPayloadUnrecognizedError struct {
	Payload any
	Hint    string
}

func (e *TokenPayloadUnrecognizedError) Error() string {
	return fmt.Sprintf("unrecognized token payload: %s", e.Hint)
}

// RefreshTokenUnknownError is returned when no refresh record exists for the
// subject, or the stored record id differs from the one embedded in the
// presented token (i.e. the token was rotated out by a later login).
type RefreshTokenUnknownError struct {
	SubjectID int
}

func (e *RefreshTokenUnknownError) Error() string {
	return fmt.Sprintf("no active refresh token known for subject %d", e.SubjectID)
}

// ConfigurationError reports an invalid startup configuration. It is fatal:
// it can only surface from constructors, never from request handling.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}
