package handler

import (
	"encoding/json"
	"go-auth-api/common"
	"go-auth-api/model"
	"go-auth-api/repository"
	"go-auth-api/service"
	"net/http"
)

type UserHandler struct {
	Repo repository.IUserRepository
}

func NewUserHandler(repo repository.IUserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// Register godoc
// @Summary      Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      model.RegisterRequest  true  "New account"
// @Success      201      {object}  model.User
// @Failure      400      {string}  string
// @Router       /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	hashedPassword, err := service.HashPassword(req.Password)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error hashing password", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.Repo.CreateUser(user); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Error creating user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)

	return nil
}
