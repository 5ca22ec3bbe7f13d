package api

import (
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles the /api/auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondBadRequest(w, r)
		return
	}

	_, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			shared.RespondWithErrorCode(w, r, CodeUserNotFound)
		case errors.Is(err, auth.ErrIncorrectPassword):
			shared.RespondWithErrorCode(w, r, CodeIncorrectPassword)
		default:
			shared.RespondServerError(w, r, err)
		}
		return
	}

	shared.WriteSessionCookie(w, token)
	shared.RespondWithData(w, r, UserResponse{Username: req.Username})
}

// Register handles the /api/auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondBadRequest(w, r)
		return
	}

	_, token, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidUsername):
			shared.RespondWithErrorCode(w, r, CodeInvalidUsername)
		case errors.Is(err, auth.ErrInvalidPassword):
			shared.RespondWithErrorCode(w, r, CodeInvalidPassword)
		case errors.Is(err, auth.ErrUserAlreadyExists):
			shared.RespondWithErrorCode(w, r, CodeUserAlreadyExists)
		default:
			shared.RespondServerError(w, r, err)
		}
		return
	}

	shared.WriteSessionCookie(w, token)
	shared.RespondWithData(w, r, UserResponse{Username: req.Username})
}

// GetUser handles the /api/user endpoint. It requires an authenticated
// session.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondUnauthorized(w, r)
		return
	}

	username, err := h.authService.GetUsername(r.Context(), userID)
	if err != nil {
		// A session pointing at a missing user is a broken invariant,
		// not a domain outcome.
		shared.RespondServerError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, UserResponse{Username: username})
}
