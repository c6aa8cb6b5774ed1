package server

import "net/http"

// handleHealth reports liveness. No auth; rate limited like the rest of
// the /v1 subtree.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
