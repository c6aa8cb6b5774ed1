// security.go - Fixed security and cache-control response headers.
package server

import "net/http"

// securityHeadersMiddleware sets the headers applied to every response,
// ahead of any other processing. Responses carry submitted personal
// data, so they are kept out of shared caches.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")

		// Prevent MIME sniffing
		h.Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		h.Set("X-Frame-Options", "DENY")

		// XSS protection (legacy but harmless)
		h.Set("X-XSS-Protection", "1; mode=block")

		next.ServeHTTP(w, r)
	})
}
