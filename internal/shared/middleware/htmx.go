package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	htmxKey      contextKey = "htmx"
	requestIDKey contextKey = "request_id"
)

// HTMX marks requests issued by htmx so handlers can answer with a fragment.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		// Fragments and full pages share a URL.
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxKey).(bool); ok {
		return v
	}
	return false
}
