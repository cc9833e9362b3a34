package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/stampworks/stampkeeper/internal/models"
	"github.com/stampworks/stampkeeper/internal/refdata"
	"github.com/stampworks/stampkeeper/internal/storage"
)

// Handler contains all HTTP handlers for the catalog API.
type Handler struct {
	catalog      *storage.Catalog
	images       *storage.ImageStore // nil when image uploads are not configured
	countryNames []refdata.CountryName
	commonwealth []string
}

// NewHandler creates a new handler instance. The image store and reference
// data are optional; the corresponding endpoints report the feature as
// unavailable when absent.
func NewHandler(catalog *storage.Catalog, images *storage.ImageStore, countryNames []refdata.CountryName, commonwealth []string) *Handler {
	return &Handler{
		catalog:      catalog,
		images:       images,
		countryNames: countryNames,
		commonwealth: commonwealth,
	}
}

// stampResult is the response envelope for create and update operations.
// Warnings carry advisory duplicate notices; they never block the write.
type stampResult struct {
	Stamp    models.Stamp `json:"stamp"`
	Warnings []string     `json:"warnings,omitempty"`
}

// ListStampsHandler handles GET /api/stamps with optional q, country and
// decade query parameters applied in succession.
func (h *Handler) ListStampsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	country := r.URL.Query().Get("country")
	decade := r.URL.Query().Get("decade")

	stamps := h.catalog.Filter(query, country, decade)
	writeJSON(w, http.StatusOK, stamps)
}

// CreateStampHandler handles POST /api/stamps.
func (h *Handler) CreateStampHandler(w http.ResponseWriter, r *http.Request) {
	var req models.StampRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	stamp := req.ToStamp()
	stamp.UniqueID = uuid.NewString()

	warnings := h.duplicateWarnings(stamp, "")
	h.catalog.Add(stamp)

	log.Info().Str("id", stamp.UniqueID).Str("name", stamp.Name).Msg("Stamp added")
	writeJSON(w, http.StatusCreated, stampResult{Stamp: stamp, Warnings: warnings})
}

// GetStampHandler handles GET /api/stamps/{id}.
func (h *Handler) GetStampHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	stamp, found := h.catalog.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, "stamp not found")
		return
	}
	writeJSON(w, http.StatusOK, stamp)
}

// UpdateStampHandler handles PUT /api/stamps/{id}. The stored unique ID is
// always preserved, whatever the payload carries.
func (h *Handler) UpdateStampHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.StampRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	stamp := req.ToStamp()
	warnings := h.duplicateWarnings(stamp, id)

	if !h.catalog.Update(id, stamp) {
		writeError(w, http.StatusNotFound, "stamp not found")
		return
	}

	updated, _ := h.catalog.Get(id)
	log.Info().Str("id", id).Str("name", updated.Name).Msg("Stamp updated")
	writeJSON(w, http.StatusOK, stampResult{Stamp: updated, Warnings: warnings})
}

// DeleteStampHandler handles DELETE /api/stamps/{id}.
func (h *Handler) DeleteStampHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.catalog.Delete(id) {
		writeError(w, http.StatusNotFound, "stamp not found")
		return
	}
	log.Info().Str("id", id).Msg("Stamp deleted")
	w.WriteHeader(http.StatusNoContent)
}

// duplicateWarnings collects advisory duplicate notices for a stamp about to
// be written. The catalog never rejects duplicates; the client decides what
// to do with the warnings.
func (h *Handler) duplicateWarnings(stamp models.Stamp, excludeID string) []string {
	var warnings []string
	if h.catalog.IsNameInUse(stamp.Name, excludeID) {
		warnings = append(warnings, "a stamp with this name already exists")
	}
	if h.catalog.IsImagePathInUse(stamp.ImagePath, excludeID) {
		warnings = append(warnings, "a stamp with this image path already exists")
	}
	return warnings
}
