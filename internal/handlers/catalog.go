package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// catalogStatus describes the open catalog for the client's title bar and
// save prompts.
type catalogStatus struct {
	Path     string `json:"path"`
	Modified bool   `json:"modified"`
	Total    int    `json:"total"`
}

type catalogPathRequest struct {
	Path string `json:"path"`
}

// CatalogStatusHandler handles GET /api/catalog.
func (h *Handler) CatalogStatusHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogStatus{
		Path:     h.catalog.Path(),
		Modified: h.catalog.Modified(),
		Total:    h.catalog.TotalCount(),
	})
}

// LoadCatalogHandler handles POST /api/catalog/load. Loading a path that does
// not exist yet starts a new catalog bound to it; a malformed file leaves the
// open catalog untouched.
func (h *Handler) LoadCatalogHandler(w http.ResponseWriter, r *http.Request) {
	var req catalogPathRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Path) == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	if err := h.catalog.Load(req.Path); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("Failed to load catalog")
		writeError(w, http.StatusUnprocessableEntity, "failed to load catalog")
		return
	}

	h.CatalogStatusHandler(w, r)
}

// SaveCatalogHandler handles POST /api/catalog/save. The path is optional;
// without one the catalog's bound path is used.
func (h *Handler) SaveCatalogHandler(w http.ResponseWriter, r *http.Request) {
	var req catalogPathRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
	}

	if err := h.catalog.Save(req.Path); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("Failed to save catalog")
		writeError(w, http.StatusUnprocessableEntity, "failed to save catalog")
		return
	}

	h.CatalogStatusHandler(w, r)
}

// NewCatalogHandler handles POST /api/catalog/new: it discards the open
// catalog and starts an empty, unbound one. The client is expected to have
// honored the modified flag before calling.
func (h *Handler) NewCatalogHandler(w http.ResponseWriter, r *http.Request) {
	h.catalog.Clear()
	log.Info().Msg("New catalog started")
	h.CatalogStatusHandler(w, r)
}
