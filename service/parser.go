// file: service/parser.go

package service

import (
	"encoding/json"
	"go-auth-api/model"
)

// TokenParser decodes presented bearer tokens and enforces the expected-kind
// and payload-shape contracts.
type TokenParser struct {
	signer *Signer
}

func NewTokenParser(signer *Signer) *TokenParser {
	return &TokenParser{signer: signer}
}

// ParseBearerToken extracts the bearer value, verifies it, and checks that
// the decoded payload declares the expected kind. For refresh tokens the
// embedded data must name both the subject and the refresh record.
func (p *TokenParser) ParseBearerToken(expectedKind model.TokenKind, headerValue string) (*model.AppClaims, error) {
	tokenString, err := ParseAuthHeader(SchemeBearer, headerValue)
	if err != nil {
		return nil, err
	}

	claims, err := p.signer.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenKind == "" {
		return nil, &TokenPayloadUnrecognizedError{
			Payload: claims,
			Hint:    "payload is missing the token_kind field",
		}
	}
	if claims.TokenKind != string(expectedKind) {
		return nil, &TokenKindMismatchError{Actual: claims.TokenKind, Expected: expectedKind}
	}

	if expectedKind == model.TokenKindRefresh {
		if _, err := decodeRefreshData(claims); err != nil {
			return nil, err
		}
	}

	return claims, nil
}

// ParseRefreshData returns the typed refresh payload of already-validated
// refresh claims.
func ParseRefreshData(claims *model.AppClaims) (*model.RefreshTokenData, error) {
	return decodeRefreshData(claims)
}

// decodeRefreshData checks the refresh payload field by field so that the
// error can name exactly what was missing.
func decodeRefreshData(claims *model.AppClaims) (*model.RefreshTokenData, error) {
	if len(claims.Data) == 0 {
		return nil, &TokenPayloadUnrecognizedError{
			Payload: claims,
			Hint:    "refresh token payload has no data",
		}
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(claims.Data, &fields); err != nil {
		return nil, &TokenPayloadUnrecognizedError{
			Payload: claims,
			Hint:    "refresh token data is not an object",
		}
	}
	if _, ok := fields["subject_id"]; !ok {
		return nil, &TokenPayloadUnrecognizedError{
			Payload: claims,
			Hint:    "refresh token data is missing subject_id",
		}
	}
	if _, ok := fields["refresh_record_id"]; !ok {
		return nil, &TokenPayloadUnrecognizedError{
			Payload: claims,
			Hint:    "refresh token data is missing refresh_record_id",
		}
	}

	data := &model.RefreshTokenData{}
	if err := json.Unmarshal(claims.Data, data); err != nil {
		return nil, &TokenPayloadUnrecognizedError{
			Payload: claims,
			Hint:    "refresh token data has malformed fields",
		}
	}
	return data, nil
}
