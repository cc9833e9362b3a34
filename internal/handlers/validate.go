package handlers

import "net/http"

// validationResult reports an advisory duplicate check. The catalog never
// enforces uniqueness; clients use this before committing a form.
type validationResult struct {
	InUse bool `json:"in_use"`
}

// ValidateNameHandler handles GET /api/validate/name?name=&exclude_id=.
func (h *Handler) ValidateNameHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	excludeID := r.URL.Query().Get("exclude_id")
	writeJSON(w, http.StatusOK, validationResult{InUse: h.catalog.IsNameInUse(name, excludeID)})
}

// ValidateImagePathHandler handles GET /api/validate/image-path?path=&exclude_id=.
func (h *Handler) ValidateImagePathHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	excludeID := r.URL.Query().Get("exclude_id")
	writeJSON(w, http.StatusOK, validationResult{InUse: h.catalog.IsImagePathInUse(path, excludeID)})
}
