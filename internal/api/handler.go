package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/apperror"
	"github.com/lougail/github-users-api/internal/query"
	"github.com/lougail/github-users-api/pkg/log"
)

// Minimum length for the search query parameter.
const searchMinLength = 3

// Handler manages the HTTP endpoints over the query service.
type Handler struct {
	Logger log.Logger
	Config *cfg.Config
	Query  *query.Service
}

func NewHandler(logger log.Logger, config *cfg.Config, querySvc *query.Service) (*Handler, error) {
	return &Handler{
		Logger: logger,
		Config: config,
		Query:  querySvc,
	}, nil
}

// RegisterRoutes sets up the health endpoint and the basic-auth gated user
// routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.health)

	r.Route("/users", func(r chi.Router) {
		credentials := map[string]string{
			h.Config.Api.BasicAuthUser: h.Config.Api.BasicAuthPass,
		}
		r.Use(chimiddleware.BasicAuth(h.Config.App.Name, credentials))

		r.Get("/", h.listUsers)
		r.Get("/search", h.searchUsers)
		r.Get("/{login}", h.getUserByLogin)
	})
}

// Health check, unauthenticated.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.Config.App.Version,
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Query.ListAll(r.Context()))
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if len(term) < searchMinLength {
		writeError(w, apperror.InputTooShort("q", searchMinLength))
		return
	}

	matches := h.Query.Search(r.Context(), term)
	h.Logger.Debug(r.Context(), "Found %d matches for query %q", len(matches), term)
	writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) getUserByLogin(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	user, err := h.Query.GetByLogin(r.Context(), login)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
