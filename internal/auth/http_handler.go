package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/radhe721/Book-Review-api/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /users/login
// @Summary User login
// @Description Authenticate user and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /users/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, httpx.ValidationMessage(details), details)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			httpx.JSONError(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		httpx.JSONInternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, resp)
}

// Logout handles POST /users/logout
// @Summary User logout
// @Description Revoke the access token the request was made with
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.MessageResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /users/logout [post]
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := httpx.TokenFrom(r)
	if token == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		httpx.JSONInternalError(w, r, err)
		return
	}
	httpx.JSONMessage(w, "Logged out successfully")
}
