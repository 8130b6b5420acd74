package handler

import (
	"context"
	"encoding/json"
	"go-auth-api/model"
	"go-auth-api/service"
	"net/http"
)

type contextKey string

const (
	// ClaimsDataKey holds the opaque data decoded from the access token.
	ClaimsDataKey contextKey = "claimsData"
)

// AuthMiddleware guards routes behind a valid access token. Token parsing is
// delegated to the auth service so the expected-kind and payload contracts
// are enforced in exactly one place.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authService.ParseToken(model.TokenKindAccess, r.Header.Get("Authorization"))
			if err != nil {
				toAppError(err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsDataKey, claims.Data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Me godoc
// @Summary      Echo the authenticated caller's access token data
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]json.RawMessage
// @Failure      401  {object}  common.AppError
// @Router       /api/me [get]
func Me(w http.ResponseWriter, r *http.Request) {
	data, _ := r.Context().Value(ClaimsDataKey).(json.RawMessage)
	if data == nil {
		data = json.RawMessage("null")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]json.RawMessage{"data": data})
}
