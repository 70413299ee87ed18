package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse acknowledges an operation that has no resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("response encode failed: status=%d error=%v", statusCode, err)
	}
}

func JSONSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func JSONSuccessCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func JSONMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func JSONError(w http.ResponseWriter, statusCode int, message string, details []ErrorDetail) {
	writeJSON(w, statusCode, ErrorResponse{
		Message: message,
		Details: details,
	})
}

// JSONInternalError logs err with the request id and writes a generic 500.
func JSONInternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("internal error: method=%s path=%s request_id=%s error=%v",
		r.Method, r.URL.Path, RequestIDFrom(r), err)
	JSONError(w, http.StatusInternalServerError, "Internal server error", nil)
}
