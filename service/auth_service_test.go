// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"go-auth-api/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo serves a fixed set of accounts keyed by email.
type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) CreateUser(user *model.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

// fakeTokenRepo is an in-memory refresh record store, one record per user.
type fakeTokenRepo struct {
	records map[int]*model.RefreshRecord
	seq     int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{records: map[int]*model.RefreshRecord{}}
}

func (f *fakeTokenRepo) Create(userID int) (*model.RefreshRecord, error) {
	f.seq++
	record := &model.RefreshRecord{
		ID:        fmt.Sprintf("rec-%d", f.seq),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	f.records[userID] = record
	return record, nil
}

func (f *fakeTokenRepo) DeleteByUserID(userID int) (int64, error) {
	if _, ok := f.records[userID]; !ok {
		return 0, nil
	}
	delete(f.records, userID)
	return 1, nil
}

func (f *fakeTokenRepo) GetByUserID(userID int) (*model.RefreshRecord, error) {
	record, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return record, nil
}

type authFixture struct {
	service   *AuthService
	userRepo  *fakeUserRepo
	tokenRepo *fakeTokenRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	signer, err := NewSigner(testSecret)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{users: map[string]*model.User{}}
	tokenRepo := newFakeTokenRepo()

	rotator := NewRefreshTokenRotator(tokenRepo)
	return &authFixture{
		service: NewAuthService(
			NewCredentialValidator(userRepo),
			NewTokenIssuer(signer, rotator),
			NewTokenParser(signer),
			rotator,
		),
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func (f *authFixture) addUser(t *testing.T, id int, email, password string) {
	hash, err := HashPassword(password)
	require.NoError(t, err)
	f.userRepo.users[email] = &model.User{ID: id, Username: email, Email: email, Password: hash}
}

func basicHeader(login, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(login+":"+secret))
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login issues a token pair", func(t *testing.T) {
		f := newAuthFixture(t)
		f.addUser(t, 1, "alice", "s3cret")

		pair, err := f.service.Login(basicHeader("alice", "s3cret"), nil)
		require.NoError(t, err)

		assert.Equal(t, model.TokenKindAccess, pair.AccessToken.Kind)
		require.NotNil(t, pair.AccessToken.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(AccessTokenLifespan), *pair.AccessToken.ExpiresAt, 2*time.Second)

		assert.Equal(t, model.TokenKindRefresh, pair.RefreshToken.Kind)
		require.NotNil(t, pair.RefreshToken.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(RefreshTokenLifespan), *pair.RefreshToken.ExpiresAt, 2*time.Second)

		// The refresh token is bound to the freshly created record.
		claims, err := f.service.ParseToken(model.TokenKindRefresh, "Bearer "+pair.RefreshToken.Value)
		require.NoError(t, err)
		data, err := ParseRefreshData(claims)
		require.NoError(t, err)
		assert.Equal(t, 1, data.SubjectID)
		assert.Equal(t, f.tokenRepo.records[1].ID, data.RefreshRecordID)
	})

	t.Run("wrong password creates no refresh record", func(t *testing.T) {
		f := newAuthFixture(t)
		f.addUser(t, 1, "alice", "s3cret")

		_, err := f.service.Login(basicHeader("alice", "wrong"), nil)

		var credErr *CredentialsInvalidError
		require.ErrorAs(t, err, &credErr)
		assert.Equal(t, "alice", credErr.Login)
		assert.Empty(t, f.tokenRepo.records)
	})

	t.Run("unknown login reads the same as a wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.Login(basicHeader("mallory", "whatever"), nil)

		var credErr *CredentialsInvalidError
		require.ErrorAs(t, err, &credErr)
		assert.Equal(t, "mallory", credErr.Login)
	})

	t.Run("missing header", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.service.Login("", nil)
		assert.ErrorIs(t, err, ErrAuthHeaderMissing)
	})

	t.Run("access data round-trips through the access token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.addUser(t, 1, "alice", "s3cret")

		data := json.RawMessage(`{"device":"phone"}`)
		pair, err := f.service.Login(basicHeader("alice", "s3cret"), data)
		require.NoError(t, err)

		claims, err := f.service.ParseToken(model.TokenKindAccess, "Bearer "+pair.AccessToken.Value)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(claims.Data))
	})
}

func TestAuthService_Renew(t *testing.T) {
	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.addUser(t, 1, "alice", "s3cret")

		pair, err := f.service.Login(basicHeader("alice", "s3cret"), nil)
		require.NoError(t, err)
		recordBefore := *f.tokenRepo.records[1]

		accessToken, err := f.service.Renew("Bearer "+pair.RefreshToken.Value, nil)
		require.NoError(t, err)
		assert.Equal(t, model.TokenKindAccess, accessToken.Kind)

		// Renew never rotates: the stored record is untouched and the same
		// refresh token keeps working.
		assert.Equal(t, recordBefore, *f.tokenRepo.records[1])
		_, err = f.service.Renew("Bearer "+pair.RefreshToken.Value, nil)
		assert.NoError(t, err)
	})

	t.Run("second login rotates out the first refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.addUser(t, 1, "alice", "s3cret")

		first, err := f.service.Login(basicHeader("alice", "s3cret"), nil)
		require.NoError(t, err)
		second, err := f.service.Login(basicHeader("alice", "s3cret"), nil)
		require.NoError(t, err)

		_, err = f.service.Renew("Bearer "+first.RefreshToken.Value, nil)
		var unknownErr *RefreshTokenUnknownError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, 1, unknownErr.SubjectID)

		_, err = f.service.Renew("Bearer "+second.RefreshToken.Value, nil)
		assert.NoError(t, err)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		f.addUser(t, 1, "alice", "s3cret")

		pair, err := f.service.Login(basicHeader("alice", "s3cret"), nil)
		require.NoError(t, err)

		_, err = f.service.Renew("Bearer "+pair.AccessToken.Value, nil)
		var kindErr *TokenKindMismatchError
		assert.ErrorAs(t, err, &kindErr)
	})

	t.Run("missing header", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.service.Renew("", nil)
		assert.ErrorIs(t, err, ErrAuthHeaderMissing)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.service.Renew("Basic abc", nil)
		var schemeErr *AuthSchemeMismatchError
		assert.ErrorAs(t, err, &schemeErr)
	})
}
