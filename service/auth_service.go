package service

import (
	"encoding/json"
	"go-auth-api/logger"
	"go-auth-api/model"
)

// AuthService composes the auth components into the two externally visible
// operations, login and renew. It holds no per-request state; everything a
// client is, lives in the token values it holds.
type AuthService struct {
	validator *CredentialValidator
	issuer    *TokenIssuer
	parser    *TokenParser
	rotator   *RefreshTokenRotator
}

func NewAuthService(validator *CredentialValidator, issuer *TokenIssuer, parser *TokenParser, rotator *RefreshTokenRotator) *AuthService {
	return &AuthService{
		validator: validator,
		issuer:    issuer,
		parser:    parser,
		rotator:   rotator,
	}
}

// Login validates Basic credentials and issues a fresh token pair. Credential
// validation runs first: a failed login never touches the refresh record
// store. Issuing the refresh token rotates out any previously stored record
// for the subject.
func (s *AuthService) Login(headerValue string, accessData json.RawMessage) (*model.TokenPair, error) {
	user, err := s.validator.ValidateCredentials(headerValue)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.issuer.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.issuer.IssueAccessToken(accessData)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("subject_id", user.ID).Info("Login successful, token pair issued")

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Renew exchanges a valid refresh token for a new access token. The refresh
// token itself is never rotated here: renewing does not invalidate any
// outstanding token.
func (s *AuthService) Renew(headerValue string, accessData json.RawMessage) (*model.IssuedToken, error) {
	claims, err := s.parser.ParseBearerToken(model.TokenKindRefresh, headerValue)
	if err != nil {
		return nil, err
	}

	data, err := ParseRefreshData(claims)
	if err != nil {
		return nil, err
	}

	if err := s.rotator.AssertKnown(data.SubjectID, data.RefreshRecordID); err != nil {
		return nil, err
	}

	logger.Log.WithField("subject_id", data.SubjectID).Info("Refresh token accepted, new access token issued")

	return s.issuer.IssueAccessToken(accessData)
}

// ParseToken is exposed for collaborators that need to authorize
// token-bearing requests, e.g. the HTTP middleware guarding protected routes.
func (s *AuthService) ParseToken(expectedKind model.TokenKind, headerValue string) (*model.AppClaims, error) {
	return s.parser.ParseBearerToken(expectedKind, headerValue)
}
