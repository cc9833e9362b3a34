package handlers

import "net/http"

// CountryStatsHandler handles GET /api/stats/countries. Blank countries are
// grouped under "Unknown". The mapping is unordered; ordering is up to the
// client.
func (h *Handler) CountryStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.CountByCountry())
}

// DecadeStatsHandler handles GET /api/stats/decades. Stamps with unparseable
// dates are grouped under "Unknown".
func (h *Handler) DecadeStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.CountByDecade())
}

// SummaryStatsHandler handles GET /api/stats/summary.
func (h *Handler) SummaryStatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"total": h.catalog.TotalCount()})
}
