package http

import (
	"net/http"

	"fixerhub-backend/internal/security"
	"fixerhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP API. Every route sits behind bearer auth except
// the health check.
func NewRouter(wallets service.WalletService, providers service.ProviderService, tokens security.TokenManager) *mux.Router {
	walletHandler := NewWalletHandler(wallets)
	providerHandler := NewProviderHandler(providers)

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/topups", walletHandler.CreateTopUp).Methods("POST")
	api.HandleFunc("/topups", walletHandler.ListTopUps).Methods("GET")
	api.HandleFunc("/jobs/{id}/settle", walletHandler.SettleCommission).Methods("POST")

	api.HandleFunc("/providers", providerHandler.ListProviders).Methods("GET")
	api.HandleFunc("/providers/{username}", providerHandler.GetProvider).Methods("GET")
	api.HandleFunc("/providers/{username}/wallet", walletHandler.GetWallet).Methods("GET")
	api.HandleFunc("/providers/{username}/transactions", walletHandler.GetLedgerEntries).Methods("GET")
	api.HandleFunc("/providers/{username}/jobs", providerHandler.ListProviderJobs).Methods("GET")

	return router
}
