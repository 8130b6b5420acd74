// file: model/request.go

package model

import "encoding/json"

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// TokenRequest is the optional body accepted by /login and /renew. Data is
// echoed verbatim into the issued access token's payload.
type TokenRequest struct {
	Data json.RawMessage `json:"data,omitempty"`
}
