package book

import (
	"encoding/json"
	"net/http"

	"github.com/radhe721/Book-Review-api/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createBookReq struct {
	Title  string `json:"title" validate:"notblank"`
	Author string `json:"author" validate:"notblank"`
	Genre  string `json:"genre"`
}

// Create handles POST /books
// @Summary Create book
// @Description Add a book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createBookReq true "Book"
// @Success 201 {object} Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, httpx.ValidationMessage(details), details)
		return
	}

	b, err := h.service.Create(r.Context(), req.Title, req.Author, req.Genre)
	if err != nil {
		httpx.JSONInternalError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, b)
}
