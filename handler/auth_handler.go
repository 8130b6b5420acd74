// file: handler/auth_handler.go

package handler

import (
	"encoding/json"
	"go-auth-api/common"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/service"
	"io"
	"net/http"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// decodeTokenRequest reads the optional request body. An empty body is fine;
// a present-but-broken one is not.
func decodeTokenRequest(r *http.Request) (*model.TokenRequest, *common.AppError) {
	req := &model.TokenRequest{}
	if r.Body == nil || r.Body == http.NoBody {
		return req, nil
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && err != io.EOF {
		return nil, common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}
	return req, nil
}

// Login godoc
// @Summary      Authenticate with Basic credentials
// @Description  Exchanges an Authorization: Basic header for an access/refresh token pair. Any prior refresh token for the subject is invalidated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.TokenRequest  false  "Opaque data to embed in the access token"
// @Success      200      {object}  model.TokenPair
// @Failure      401      {object}  common.AppError
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	req, appErr := decodeTokenRequest(r)
	if appErr != nil {
		return appErr
	}

	logger.Log.Info("Login request received")

	pair, err := h.service.Login(r.Header.Get("Authorization"), req.Data)
	if err != nil {
		return toAppError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(pair)

	return nil
}

// Renew godoc
// @Summary      Exchange a refresh token for a new access token
// @Description  Exchanges an Authorization: Bearer refresh token for a fresh access token. The refresh token itself stays valid.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.TokenRequest  false  "Opaque data to embed in the access token"
// @Success      200      {object}  map[string]model.IssuedToken
// @Failure      401      {object}  common.AppError
// @Failure      403      {object}  common.AppError
// @Router       /renew [post]
func (h *AuthHandler) Renew(w http.ResponseWriter, r *http.Request) *common.AppError {
	req, appErr := decodeTokenRequest(r)
	if appErr != nil {
		return appErr
	}

	logger.Log.Info("Renew request received")

	accessToken, err := h.service.Renew(r.Header.Get("Authorization"), req.Data)
	if err != nil {
		return toAppError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]*model.IssuedToken{"access_token": accessToken})

	return nil
}
