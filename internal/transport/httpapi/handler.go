package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/krishn404/RepOSS/internal/common"
	"github.com/krishn404/RepOSS/internal/domain"
	"github.com/krishn404/RepOSS/internal/port"
)

// StaffPickLister is the slice of the candidate pool the API exposes for
// the landing page.
type StaffPickLister interface {
	StaffPicks(ctx context.Context, limit int) ([]*domain.Repo, error)
}

// Handler wires the recommendation engine to the HTTP surface.
type Handler struct {
	recommender port.Recommender
	staff       StaffPickLister
}

// NewHandler creates the HTTP handler.
func NewHandler(recommender port.Recommender, staff StaffPickLister) *Handler {
	return &Handler{
		recommender: recommender,
		staff:       staff,
	}
}

// Routes builds the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/contribution-picks", h.getContributionPicks)
	r.Get("/api/staff-picks", h.getStaffPicks)
	r.Get("/healthz", h.healthz)

	return r
}

// getContributionPicks serves GET /api/contribution-picks.
// Identity comes from the X-User-ID header; guests must supply the
// githubUsername query parameter. Data-availability problems never reach
// this layer as errors, only input problems do.
func (h *Handler) getContributionPicks(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.URL.Query().Get("githubUsername"))
	identity := strings.TrimSpace(r.Header.Get("X-User-ID"))

	if identity == "" && username == "" {
		writeError(w, http.StatusUnauthorized, "authentication required or provide githubUsername query parameter")
		return
	}
	if username == "" {
		writeError(w, http.StatusBadRequest, "githubUsername query parameter is required")
		return
	}

	picks, err := h.recommender.ContributionPicks(r.Context(), identity, username)
	if err != nil {
		if common.IsCode(err, common.ErrCodeInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ [API] contribution picks failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, picks)
}

// getStaffPicks serves GET /api/staff-picks, the curated landing-page list.
func (h *Handler) getStaffPicks(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	repos, err := h.staff.StaffPicks(r.Context(), limit)
	if err != nil {
		log.Printf("❌ [API] staff picks query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, repos)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ [API] write response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
