// file: service/signer_test.go

package service

import (
	"encoding/json"
	"go-auth-api/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func newTestSigner(t *testing.T) *Signer {
	signer, err := NewSigner(testSecret)
	require.NoError(t, err)
	return signer
}

func TestNewSigner_RequiresSecret(t *testing.T) {
	signer, err := NewSigner("")
	assert.Nil(t, signer)

	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestSigner_RoundTrip(t *testing.T) {
	signer := newTestSigner(t)
	data := json.RawMessage(`{"role":"admin","device":"laptop"}`)

	token, err := signer.Sign(model.TokenKindAccess, data, AccessTokenLifespan)
	require.NoError(t, err)
	assert.Equal(t, model.TokenKindAccess, token.Kind)
	assert.NotEmpty(t, token.Value)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, token.IssuedAt.Add(AccessTokenLifespan), *token.ExpiresAt, time.Second)

	claims, err := signer.Verify(token.Value)
	require.NoError(t, err)
	assert.Equal(t, string(model.TokenKindAccess), claims.TokenKind)
	assert.JSONEq(t, string(data), string(claims.Data))
}

func TestSigner_ExpiryEnforcement(t *testing.T) {
	signer := newTestSigner(t)

	t.Run("expired token is rejected", func(t *testing.T) {
		// A negative lifespan puts the expiry beyond the 1s leeway in the past.
		token, err := signer.Sign(model.TokenKindAccess, nil, -2*time.Second)
		require.NoError(t, err)

		_, err = signer.Verify(token.Value)
		var expErr *TokenExpiredError
		require.ErrorAs(t, err, &expErr)
		assert.Equal(t, model.TokenKindAccess, expErr.Kind)
		assert.WithinDuration(t, time.Now().Add(-2*time.Second), expErr.ExpiredAt, time.Second)
	})

	t.Run("token inside its lifespan verifies", func(t *testing.T) {
		token, err := signer.Sign(model.TokenKindAccess, nil, 5*time.Second)
		require.NoError(t, err)

		_, err = signer.Verify(token.Value)
		assert.NoError(t, err)
	})
}

func TestSigner_RejectsForeignSignature(t *testing.T) {
	signer := newTestSigner(t)
	other, err := NewSigner("a-different-secret")
	require.NoError(t, err)

	token, err := other.Sign(model.TokenKindAccess, nil, AccessTokenLifespan)
	require.NoError(t, err)

	_, err = signer.Verify(token.Value)
	var malErr *TokenMalformedError
	assert.ErrorAs(t, err, &malErr)
}

func TestSigner_RejectsGarbage(t *testing.T) {
	signer := newTestSigner(t)

	_, err := signer.Verify("definitely.not.a-token")
	var malErr *TokenMalformedError
	assert.ErrorAs(t, err, &malErr)
}
