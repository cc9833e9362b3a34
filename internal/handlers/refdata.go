package handlers

import (
	"net/http"

	"github.com/stampworks/stampkeeper/internal/refdata"
)

// CountryNamesHandler handles GET /api/reference/country-names, optionally
// narrowed to a current country via ?country=.
func (h *Handler) CountryNamesHandler(w http.ResponseWriter, r *http.Request) {
	if h.countryNames == nil {
		writeError(w, http.StatusServiceUnavailable, "reference data is not configured")
		return
	}
	if country := r.URL.Query().Get("country"); country != "" {
		writeJSON(w, http.StatusOK, refdata.PreviousNames(h.countryNames, country))
		return
	}
	writeJSON(w, http.StatusOK, h.countryNames)
}

// CommonwealthHandler handles GET /api/reference/commonwealth.
func (h *Handler) CommonwealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.commonwealth == nil {
		writeError(w, http.StatusServiceUnavailable, "reference data is not configured")
		return
	}
	writeJSON(w, http.StatusOK, h.commonwealth)
}

// HealthCheckHandler handles GET /health.
func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
