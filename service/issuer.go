// file: service/issuer.go

package service

import (
	"encoding/json"
	"fmt"
	"go-auth-api/model"
	"time"
)

// Fixed per-kind lifespans. The access lifespan is deliberately short: it
// forces frequent renew calls, which bounds how long a leaked access token
// stays usable.
const (
	AccessTokenLifespan  = 30 * time.Second
	RefreshTokenLifespan = 7 * 24 * time.Hour
)

// TokenIssuer builds access and refresh tokens with the correct lifespans
// and payload shapes.
type TokenIssuer struct {
	signer  *Signer
	rotator *RefreshTokenRotator
}

func NewTokenIssuer(signer *Signer, rotator *RefreshTokenRotator) *TokenIssuer {
	return &TokenIssuer{signer: signer, rotator: rotator}
}

// IssueAccessToken signs an access token carrying the caller-supplied opaque
// data. Access tokens have no persisted identity; signature and expiry are
// their only validity criteria.
func (i *TokenIssuer) IssueAccessToken(data json.RawMessage) (*model.IssuedToken, error) {
	return i.signer.Sign(model.TokenKindAccess, data, AccessTokenLifespan)
}

// IssueRefreshToken rotates the subject's refresh record and signs a refresh
// token bound to the new record id.
func (i *TokenIssuer) IssueRefreshToken(subjectID int) (*model.IssuedToken, error) {
	recordID, err := i.rotator.Rotate(subjectID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(model.RefreshTokenData{
		SubjectID:       subjectID,
		RefreshRecordID: recordID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode refresh token data: %w", err)
	}

	return i.signer.Sign(model.TokenKindRefresh, data, RefreshTokenLifespan)
}
