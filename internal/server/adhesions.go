// adhesions.go - Public submission intake and admin listing.
package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
)

// maxBodyBytes caps submission payloads at 1 MiB.
const maxBodyBytes = 1 << 20

type paginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// handleCreateAdhesion accepts a public signup submission, validates and
// normalizes it, and stores it.
func (s *Server) handleCreateAdhesion(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createAdhesionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, msg := validateSubmission(req)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	stored, err := s.store.Insert(r.Context(), rec)
	if err != nil {
		s.log.Errorw("saving adhesion failed",
			"rid", RequestIDFromContext(r.Context()), "err", err)
		respondError(w, http.StatusInternalServerError, "Failed to save adhesion")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"data": stored})
}

// handleListAdhesions returns one page of submissions, newest first,
// with pagination metadata. Reached only through requireAdmin.
func (s *Server) handleListAdhesions(w http.ResponseWriter, r *http.Request) {
	page := clampPage(queryInt(r, "page", defaultPage))
	limit := clampLimit(queryInt(r, "limit", defaultLimit))

	rows, total, err := s.store.List(r.Context(), page, limit)
	if err != nil {
		s.log.Errorw("fetching adhesions failed",
			"rid", RequestIDFromContext(r.Context()), "err", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch adhesions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data": rows,
		"pagination": paginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// queryInt parses an integer query parameter, falling back to def when
// absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
