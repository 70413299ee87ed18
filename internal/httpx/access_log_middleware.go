package httpx

import (
	"log"
	"net/http"
	"time"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int64
	headerWritten bool
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.headerWritten {
		rw.statusCode = code
		rw.headerWritten = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

func (rw *responseWriter) wroteHeader() bool {
	return rw.headerWritten
}

// AccessLogMiddleware logs one line per request. It must run inside RequestIDMiddleware
// so the request id is available, and the user id is read back from the request the
// auth middleware enriched.
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)

		var userID string
		next.ServeHTTP(rw, r.WithContext(withUserSink(r.Context(), &userID)))

		log.Printf("access method=%s path=%s status=%d bytes=%d duration_ms=%d request_id=%s user_id=%s",
			r.Method,
			r.URL.Path,
			rw.statusCode,
			rw.bytesWritten,
			time.Since(start).Milliseconds(),
			RequestIDFrom(r),
			userID,
		)
	})
}
