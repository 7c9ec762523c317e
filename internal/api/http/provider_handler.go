package http

import (
	"net/http"

	"fixerhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// ProviderHandler exposes the provider directory over HTTP
type ProviderHandler struct {
	providers service.ProviderService
}

func NewProviderHandler(providers service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// ListProviders handles GET /api/v1/providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.providers.ListProviders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, providers)
}

// GetProvider handles GET /api/v1/providers/{username}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	provider, err := h.providers.GetProvider(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, provider)
}

// ListProviderJobs handles GET /api/v1/providers/{username}/jobs
func (h *ProviderHandler) ListProviderJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.providers.ListProviderJobs(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, jobs)
}
