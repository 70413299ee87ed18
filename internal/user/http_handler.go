package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radhe721/Book-Review-api/internal/httpx"
	"github.com/radhe721/Book-Review-api/internal/platform/crypto"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type registerReq struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"notblank,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterUser handles POST /users/register
// @Summary Register a new user
// @Description Create a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body registerReq true "Registration request"
// @Success 201 {object} User
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /users/register [post]
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, httpx.ValidationMessage(details), details)
		return
	}

	newUser, err := h.service.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyExists):
			httpx.JSONError(w, http.StatusConflict, "Email already exists", nil)
		case errors.Is(err, crypto.ErrPasswordTooShort):
			httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			httpx.JSONInternalError(w, r, err)
		}
		return
	}

	httpx.JSONSuccessCreated(w, newUser)
}

// GetCurrentUser handles GET /me
// @Summary Get current user
// @Description Get the authenticated user's information
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} User
// @Failure 401 {object} httpx.ErrorResponse
// @Router /me [get]
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		httpx.JSONInternalError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, u)
}
