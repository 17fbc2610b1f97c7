package middleware

import (
	"net/http"
	"strings"
)

// CaseInsensitiveMiddleware lower-cases the URL path before routing.
// Scan sheets encode URLs in upper case to keep QR codes in alphanumeric
// mode, so /API/WORK-ORDERS/... must reach the same handler as /api/work-orders/...
func CaseInsensitiveMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = strings.ToLower(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
