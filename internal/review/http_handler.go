package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type reviewReq struct {
	Rating  *float64 `json:"rating" validate:"required"`
	Comment *string  `json:"comment"`
}

func decodeReview(w http.ResponseWriter, r *http.Request) (reviewReq, bool) {
	var req reviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return req, false
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, httpx.ValidationMessage(details), details)
		return req, false
	}
	return req, true
}

// Create handles POST /books/{id}/reviews
// @Summary Review a book
// @Description Add the caller's review of a book. Each user may review a book once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Param request body reviewReq true "Review"
// @Success 201 {object} Review
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/{id}/reviews [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	req, ok := decodeReview(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), chi.URLParam(r, "id"), userID, *req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
		case errors.Is(err, ErrAlreadyReviewed):
			httpx.JSONError(w, http.StatusBadRequest, "You have already reviewed this book", nil)
		default:
			httpx.JSONInternalError(w, r, err)
		}
		return
	}
	httpx.JSONSuccessCreated(w, created)
}

// Update handles PUT /reviews/{id}
// @Summary Update review
// @Description Replace the rating and comment of the caller's own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Review ID"
// @Param request body reviewReq true "Review"
// @Success 200 {object} Review
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /reviews/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	req, ok := decodeReview(w, r)
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), userID, *req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Review not found", nil)
		case errors.Is(err, ErrForbidden):
			httpx.JSONError(w, http.StatusForbidden, "Not authorized to update this review", nil)
		default:
			httpx.JSONInternalError(w, r, err)
		}
		return
	}
	httpx.JSONSuccess(w, updated)
}

// Delete handles DELETE /reviews/{id}
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param id path string true "Review ID"
// @Success 200 {object} httpx.MessageResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Review not found", nil)
		case errors.Is(err, ErrForbidden):
			httpx.JSONError(w, http.StatusForbidden, "Not authorized to delete this review", nil)
		default:
			httpx.JSONInternalError(w, r, err)
		}
		return
	}
	httpx.JSONMessage(w, "Review deleted successfully")
}
