// file: service/parser_test.go

package service

import (
	"encoding/json"
	"go-auth-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuthHeader(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		_, err := ParseAuthHeader(SchemeBearer, "")
		assert.ErrorIs(t, err, ErrAuthHeaderMissing)

		_, err = ParseAuthHeader(SchemeBearer, "   ")
		assert.ErrorIs(t, err, ErrAuthHeaderMissing)
	})

	t.Run("scheme mismatch", func(t *testing.T) {
		_, err := ParseAuthHeader(SchemeBearer, "Basic dXNlcjpwYXNz")
		var schemeErr *AuthSchemeMismatchError
		require.ErrorAs(t, err, &schemeErr)
		assert.Equal(t, "Basic", schemeErr.Actual)
		assert.Equal(t, SchemeBearer, schemeErr.Expected)
	})

	t.Run("right scheme but no value", func(t *testing.T) {
		_, err := ParseAuthHeader(SchemeBearer, "Bearer")
		var schemeErr *AuthSchemeMismatchError
		require.ErrorAs(t, err, &schemeErr)
		// The message must read as a format failure, not claim the
		// scheme was unexpected while naming the expected one.
		assert.Contains(t, err.Error(), "malformed")
		assert.NotContains(t, err.Error(), "unexpected authorization scheme")
	})

	t.Run("right scheme but too many parts", func(t *testing.T) {
		_, err := ParseAuthHeader(SchemeBearer, "Bearer one two")
		var schemeErr *AuthSchemeMismatchError
		require.ErrorAs(t, err, &schemeErr)
		assert.Contains(t, err.Error(), "malformed")
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		value, err := ParseAuthHeader(SchemeBearer, "bearer some-token")
		require.NoError(t, err)
		assert.Equal(t, "some-token", value)
	})
}

func TestTokenParser_KindIsolation(t *testing.T) {
	signer := newTestSigner(t)
	parser := NewTokenParser(signer)

	refreshData, _ := json.Marshal(model.RefreshTokenData{SubjectID: 1, RefreshRecordID: "rec-1"})
	accessToken, err := signer.Sign(model.TokenKindAccess, nil, AccessTokenLifespan)
	require.NoError(t, err)
	refreshToken, err := signer.Sign(model.TokenKindRefresh, refreshData, RefreshTokenLifespan)
	require.NoError(t, err)

	t.Run("access token rejected where refresh expected", func(t *testing.T) {
		_, err := parser.ParseBearerToken(model.TokenKindRefresh, "Bearer "+accessToken.Value)
		var kindErr *TokenKindMismatchError
		require.ErrorAs(t, err, &kindErr)
		assert.Equal(t, string(model.TokenKindAccess), kindErr.Actual)
		assert.Equal(t, model.TokenKindRefresh, kindErr.Expected)
	})

	t.Run("refresh token rejected where access expected", func(t *testing.T) {
		_, err := parser.ParseBearerToken(model.TokenKindAccess, "Bearer "+refreshToken.Value)
		var kindErr *TokenKindMismatchError
		assert.ErrorAs(t, err, &kindErr)
	})

	t.Run("matching kind passes", func(t *testing.T) {
		claims, err := parser.ParseBearerToken(model.TokenKindRefresh, "Bearer "+refreshToken.Value)
		require.NoError(t, err)
		assert.Equal(t, string(model.TokenKindRefresh), claims.TokenKind)
	})
}

func TestTokenParser_PayloadContract(t *testing.T) {
	signer := newTestSigner(t)
	parser := NewTokenParser(signer)

	t.Run("missing token kind", func(t *testing.T) {
		token, err := signer.Sign(model.TokenKind(""), nil, AccessTokenLifespan)
		require.NoError(t, err)

		_, err = parser.ParseBearerToken(model.TokenKindAccess, "Bearer "+token.Value)
		var payloadErr *TokenPayloadUnrecognizedError
		require.ErrorAs(t, err, &payloadErr)
		assert.Contains(t, payloadErr.Hint, "token_kind")
	})

	t.Run("refresh token without data", func(t *testing.T) {
		token, err := signer.Sign(model.TokenKindRefresh, nil, RefreshTokenLifespan)
		require.NoError(t, err)

		_, err = parser.ParseBearerToken(model.TokenKindRefresh, "Bearer "+token.Value)
		var payloadErr *TokenPayloadUnrecognizedError
		require.ErrorAs(t, err, &payloadErr)
		assert.Contains(t, payloadErr.Hint, "no data")
	})

	t.Run("refresh data missing subject_id", func(t *testing.T) {
		token, err := signer.Sign(model.TokenKindRefresh, json.RawMessage(`{"refresh_record_id":"rec-1"}`), RefreshTokenLifespan)
		require.NoError(t, err)

		_, err = parser.ParseBearerToken(model.TokenKindRefresh, "Bearer "+token.Value)
		var payloadErr *TokenPayloadUnrecognizedError
		require.ErrorAs(t, err, &payloadErr)
		assert.Contains(t, payloadErr.Hint, "subject_id")
	})

	t.Run("refresh data missing refresh_record_id", func(t *testing.T) {
		token, err := signer.Sign(model.TokenKindRefresh, json.RawMessage(`{"subject_id":42}`), RefreshTokenLifespan)
		require.NoError(t, err)

		_, err = parser.ParseBearerToken(model.TokenKindRefresh, "Bearer "+token.Value)
		var payloadErr *TokenPayloadUnrecognizedError
		require.ErrorAs(t, err, &payloadErr)
		assert.Contains(t, payloadErr.Hint, "refresh_record_id")
	})

	t.Run("refresh data not an object", func(t *testing.T) {
		token, err := signer.Sign(model.TokenKindRefresh, json.RawMessage(`"just-a-string"`), RefreshTokenLifespan)
		require.NoError(t, err)

		_, err = parser.ParseBearerToken(model.TokenKindRefresh, "Bearer "+token.Value)
		var payloadErr *TokenPayloadUnrecognizedError
		require.ErrorAs(t, err, &payloadErr)
		assert.Contains(t, payloadErr.Hint, "not an object")
	})
}
