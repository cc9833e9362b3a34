package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// maxUploadSize caps stamp scan uploads at 10 MB.
const maxUploadSize = 10 << 20

// UploadImageHandler handles POST /api/stamps/{id}/image: it stores the
// uploaded scan and records its public URL as the stamp's image path.
// Returns 503 when no image store is configured.
func (h *Handler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		writeError(w, http.StatusServiceUnavailable, "image uploads are not configured")
		return
	}

	id := mux.Vars(r)["id"]
	stamp, found := h.catalog.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, "stamp not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	_, url, err := h.images.Upload(r.Context(), file, header.Filename, contentType, header.Size)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to upload stamp scan")
		writeError(w, http.StatusInternalServerError, "failed to upload image")
		return
	}

	stamp.ImagePath = url
	h.catalog.Update(id, stamp)

	writeJSON(w, http.StatusOK, stamp)
}
