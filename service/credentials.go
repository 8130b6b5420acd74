// file: service/credentials.go

package service

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"go-auth-api/model"
	"go-auth-api/repository"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeBasic  = "Basic"
	SchemeBearer = "Bearer"
)

// ParseAuthHeader splits a "scheme value" Authorization header and returns
// the value part. The scheme comparison is case-insensitive.
func ParseAuthHeader(expectedScheme, headerValue string) (string, error) {
	if strings.TrimSpace(headerValue) == "" {
		return "", ErrAuthHeaderMissing
	}

	parts := strings.Fields(headerValue)
	if !strings.EqualFold(parts[0], expectedScheme) {
		return "", &AuthSchemeMismatchError{Actual: parts[0], Expected: expectedScheme}
	}
	// Right scheme, but not the two-part "scheme value" shape.
	if len(parts) != 2 {
		return "", &AuthSchemeMismatchError{Actual: parts[0], Expected: expectedScheme}
	}

	return parts[1], nil
}

// CredentialValidator checks presented Basic credentials against stored
// account records.
type CredentialValidator struct {
	userRepo repository.IUserRepository
}

func NewCredentialValidator(userRepo repository.IUserRepository) *CredentialValidator {
	return &CredentialValidator{userRepo: userRepo}
}

// ValidateCredentials decodes a Basic header into login and secret, looks up
// the account, and compares the secret against the stored bcrypt hash. An
// unknown login and a wrong secret both collapse into CredentialsInvalidError
// so a caller cannot probe which half was wrong; store failures are not
// credential failures and propagate unchanged.
func (v *CredentialValidator) ValidateCredentials(headerValue string) (*model.User, error) {
	encoded, err := ParseAuthHeader(SchemeBasic, headerValue)
	if err != nil {
		return nil, err
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &CredentialsInvalidError{}
	}

	login, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return nil, &CredentialsInvalidError{Login: login}
	}

	user, err := v.userRepo.GetUserByEmail(login)
	if err != nil {
		// Only a definitive no-match is a credential failure; a store
		// outage propagates as-is.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &CredentialsInvalidError{Login: login}
		}
		return nil, err
	}
	if user == nil {
		return nil, &CredentialsInvalidError{Login: login}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(secret)); err != nil {
		return nil, &CredentialsInvalidError{Login: login}
	}

	return user, nil
}

// HashPassword hashes a plaintext password for storage. Used by the register
// flow; the validator only ever compares.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
