package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	tokenKey     contextKey = "token"
	requestIDKey contextKey = "requestID"
	userSinkKey  contextKey = "userSink"
)

// UserIDFrom retrieves the authenticated user ID from the request context.
func UserIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// TokenFrom retrieves the bearer token the request was authenticated with.
func TokenFrom(r *http.Request) string {
	if v, ok := r.Context().Value(tokenKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context carrying the user ID and the token it was resolved from.
func ContextWithUser(ctx context.Context, userID, token string) context.Context {
	if sink, ok := ctx.Value(userSinkKey).(*string); ok {
		*sink = userID
	}
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, tokenKey, token)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context with the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// withUserSink lets an outer middleware observe the user an inner middleware authenticated.
func withUserSink(ctx context.Context, sink *string) context.Context {
	return context.WithValue(ctx, userSinkKey, sink)
}
