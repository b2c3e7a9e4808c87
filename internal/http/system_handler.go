package http

import (
	"log/slog"
	"net/http"
)

type systemHandler struct {
	logger *slog.Logger
	seeder Seeder
	store  StoreInfo
}

func newSystemHandler(logger *slog.Logger, seeder Seeder, store StoreInfo) *systemHandler {
	return &systemHandler{
		logger: logger,
		seeder: seeder,
		store:  store,
	}
}

type rootResponse struct {
	Brand   string `json:"brand"`
	Message string `json:"message"`
}

func (h *systemHandler) root(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), h.logger, w, http.StatusOK, rootResponse{
		Brand:   "Мебелла",
		Message: "Добро пожаловать в каталог мебели",
	})
}

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// diagnostics always answers 200: every store failure is downgraded to a
// status string inside the payload.
func (h *systemHandler) diagnostics(w http.ResponseWriter, r *http.Request) {
	res := diagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store.URLConfigured() {
		res.DatabaseURL = "set"
	}

	if h.store.Available() {
		res.DatabaseName = h.store.Name()
		res.ConnectionStatus = "connected"

		collections, err := h.store.Collections(r.Context())
		if err != nil {
			res.Database = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			res.Database = "connected and working"
			res.Collections = collections
		}
	}

	respondJSON(r.Context(), h.logger, w, http.StatusOK, res)
}

func (h *systemHandler) seed(w http.ResponseWriter, r *http.Request) {
	result := h.seeder.SeedIfEmpty(r.Context())

	status := http.StatusOK
	if result.Failed() {
		status = http.StatusInternalServerError
	}

	respondJSON(r.Context(), h.logger, w, status, result)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
