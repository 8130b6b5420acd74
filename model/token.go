// file: model/token.go

package model

import "time"

// TokenKind distinguishes the two token flavors at runtime. The kind is
// embedded in the signed payload and checked again on every parse, so a
// refresh token can never be replayed where an access token is expected.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// IssuedToken is a signed token together with its envelope metadata. It is
// never persisted; the signed value is the only thing handed to clients.
type IssuedToken struct {
	Kind      TokenKind  `json:"kind"`
	Value     string     `json:"value"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  *IssuedToken `json:"access_token"`
	RefreshToken *IssuedToken `json:"refresh_token"`
}

// RefreshRecord is the persisted backing row for a refresh token. At most one
// exists per user; rotation replaces it wholesale.
type RefreshRecord struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RefreshTokenData is the payload data carried by refresh tokens. Both fields
// are mandatory; a refresh token whose record id no longer matches the stored
// RefreshRecord has been rotated out and is rejected.
type RefreshTokenData struct {
	SubjectID       int    `json:"subject_id"`
	RefreshRecordID string `json:"refresh_record_id"`
}
