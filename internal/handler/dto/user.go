// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/wearcast/wearcast/internal/model"
)

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents the request body for authenticating.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninResponse carries the issued identity token.
type SigninResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest represents the request body for updating the
// caller's own profile.
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UserResponse represents a user in API responses.
// The password hash is never part of this shape.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a model.User to its API representation.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ErrorResponse is the single error shape every endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
