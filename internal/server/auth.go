// auth.go - HTTP Basic authentication for the admin listing route.
package server

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// adminUsername is the single privileged identity. There is no user
// management; the matching bcrypt hash comes from ADMIN_PASSWORD.
const adminUsername = "admin"

// requireAdmin rejects the request with a uniform 401 unless it carries
// Basic credentials for the admin identity. Missing header, non-Basic
// scheme, malformed payload, wrong username, unconfigured hash, and
// wrong password are indistinguishable to the client. Credentials are
// never logged.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != adminUsername || s.cfg.AdminPasswordHash == "" {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(pass)) != nil {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
