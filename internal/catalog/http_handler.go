package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /books
// @Summary List books
// @Description Newest books first, optionally filtered by exact author and genre
// @Tags books
// @Produce json
// @Param author query string false "Exact author"
// @Param genre query string false "Exact genre"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} BookPage
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	p := httpx.PaginationFrom(r)
	query := r.URL.Query()

	page, err := h.svc.List(r.Context(), ListParams{
		Page:   p.Page,
		Limit:  p.Limit,
		Author: query.Get("author"),
		Genre:  query.Get("genre"),
	})
	if err != nil {
		httpx.JSONInternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, page)
}

// Search handles GET /books/search
// @Summary Search books
// @Description Case-insensitive substring match on title or author, at most 10 results
// @Tags books
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		if errors.Is(err, ErrEmptyQuery) {
			httpx.JSONError(w, http.StatusBadRequest, "Search query is required", nil)
			return
		}
		httpx.JSONInternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// Get handles GET /books/{id}
// @Summary Get book with reviews
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Param page query int false "Review page" default(1)
// @Param limit query int false "Reviews per page" default(10)
// @Success 200 {object} BookDetail
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := httpx.PaginationFrom(r)

	detail, err := h.svc.GetWithReviews(r.Context(), chi.URLParam(r, "id"), p.Page, p.Limit)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found", nil)
			return
		}
		httpx.JSONInternalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, detail)
}
