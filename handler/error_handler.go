package handler

import (
	"errors"
	"go-auth-api/common"
	"go-auth-api/service"
	"net/http"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// toAppError translates the auth service's typed errors into transport
// responses. Identification failures (bad header, bad credentials, broken
// token) are 401; a token that is authentic but unusable (expired, wrong
// kind, rotated out) is 403. Anything unclassified is a 500.
func toAppError(err error) *common.AppError {
	var (
		schemeErr  *service.AuthSchemeMismatchError
		credErr    *service.CredentialsInvalidError
		malErr     *service.TokenMalformedError
		expErr     *service.TokenExpiredError
		kindErr    *service.TokenKindMismatchError
		payloadErr *service.TokenPayloadUnrecognizedError
		unknownErr *service.RefreshTokenUnknownError
	)

	switch {
	case errors.Is(err, service.ErrAuthHeaderMissing):
		return common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
	case errors.As(err, &schemeErr):
		return common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", err)
	case errors.As(err, &credErr):
		return common.NewAppError(http.StatusUnauthorized, "Invalid credentials", err)
	case errors.As(err, &malErr):
		return common.NewAppError(http.StatusUnauthorized, "Invalid token", err)
	case errors.As(err, &expErr):
		return common.NewAppError(http.StatusForbidden, "Token has expired", err)
	case errors.As(err, &kindErr):
		return common.NewAppError(http.StatusForbidden, "Wrong token type", err)
	case errors.As(err, &payloadErr):
		return common.NewAppError(http.StatusForbidden, "Unrecognized token payload", err)
	case errors.As(err, &unknownErr):
		return common.NewAppError(http.StatusForbidden, "Refresh token is no longer valid", err)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}
}
