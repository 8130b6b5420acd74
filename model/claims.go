package model

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// AppClaims is the payload signed into every token. Data is kept raw: for
// access tokens it is caller-supplied opaque JSON, for refresh tokens it
// decodes into RefreshTokenData.
type AppClaims struct {
	TokenKind string          `json:"token_kind,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	jwt.RegisteredClaims
}
