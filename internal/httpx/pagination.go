package httpx

import (
	"math"
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

// Offset is the number of items to skip before the page starts. It saturates at
// math.MaxInt instead of overflowing, so a huge page is simply past the end.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit).
func (p Pagination) TotalPages(total int) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return pages
}

// PaginationFrom reads the page and limit query parameters. Values are coerced leniently:
// the leading integer of the value is used ("3abc" is 3), and anything absent, non-numeric
// or below 1 falls back to the defaults.
func PaginationFrom(r *http.Request) Pagination {
	query := r.URL.Query()
	return Pagination{
		Page:  leadingInt(query.Get("page"), DefaultPage),
		Limit: leadingInt(query.Get("limit"), DefaultLimit),
	}
}

func leadingInt(raw string, def int) int {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
		i++
	}
	start := i
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return def
	}
	n, err := strconv.Atoi(raw[start:i])
	if err != nil || n < 1 {
		return def
	}
	return n
}
