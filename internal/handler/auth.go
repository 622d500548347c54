package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wearcast/wearcast/internal/handler/dto"
	"github.com/wearcast/wearcast/internal/service"
)

// AuthHandler handles signup and signin.
type AuthHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signup handles POST /api/v1/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  "bad_request",
		})
		return
	}

	input := service.RegisterInput{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	}

	user, err := h.svc.Register(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("user_registered", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// Signin handles POST /api/v1/signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  "bad_request",
		})
		return
	}

	token, err := h.svc.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Failed logins are expected traffic; the email is never logged.
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SigninResponse{Token: token})
}
