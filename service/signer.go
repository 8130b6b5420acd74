// file: service/signer.go

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"go-auth-api/logger"
	"go-auth-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification tolerates this much clock skew before declaring expiry.
const expiryLeeway = 1 * time.Second

// Signer signs and verifies tokens with a single process-wide HS256 secret.
// The secret is fixed at construction and never reloaded.
type Signer struct {
	secret []byte
}

// NewSigner fails when no secret is configured. The caller is expected to
// treat that as a fatal startup error, not a request-time one.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, &ConfigurationError{Reason: "JWT secret key is not set"}
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign encodes the kind and opaque data into a signed token valid for the
// given lifespan, returning the envelope alongside the signed value.
func (s *Signer) Sign(kind model.TokenKind, data json.RawMessage, lifespan time.Duration) (*model.IssuedToken, error) {
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(lifespan)

	claims := &model.AppClaims{
		TokenKind: string(kind),
		Data:      data,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("kind", kind).Error("Failed to sign token")
		return nil, fmt.Errorf("failed to sign token string: %w", err)
	}

	return &model.IssuedToken{
		Kind:      kind,
		Value:     tokenString,
		IssuedAt:  issuedAt,
		ExpiresAt: &expiresAt,
	}, nil
}

// Verify checks signature and expiry and returns the decoded claims.
// An expired-but-authentic token yields TokenExpiredError; everything else
// that goes wrong yields TokenMalformedError.
func (s *Signer) Verify(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithLeeway(expiryLeeway))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Claims are decoded before validation, so the envelope is
			// available even for expired tokens.
			expiredAt := time.Time{}
			if claims.ExpiresAt != nil {
				expiredAt = claims.ExpiresAt.Time
			}
			return nil, &TokenExpiredError{
				Kind:      model.TokenKind(claims.TokenKind),
				ExpiredAt: expiredAt,
			}
		}
		return nil, &TokenMalformedError{Cause: err}
	}

	if !token.Valid {
		return nil, &TokenMalformedError{Cause: errors.New("token is not valid")}
	}

	return claims, nil
}
