package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// WalletHandler exposes the wallet ledger operations over HTTP
type WalletHandler struct {
	wallets service.WalletService
}

func NewWalletHandler(wallets service.WalletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

type topUpRequest struct {
	PayerName      string `json:"payer_name"`
	Detail         string `json:"detail"`
	AmountCents    int64  `json:"amount_cents"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

type topUpResponse struct {
	TopUp           *domain.TopUp `json:"topup"`
	NewBalanceCents int64         `json:"new_balance_cents"`
}

// CreateTopUp handles POST /api/v1/topups
func (h *WalletHandler) CreateTopUp(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	topUp, newBalance, err := h.wallets.TopUp(r.Context(), req.PayerName, req.Detail, req.AmountCents, req.Email, req.Phone, req.DocumentType, req.DocumentNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, topUpResponse{TopUp: topUp, NewBalanceCents: newBalance})
}

// ListTopUps handles GET /api/v1/topups
func (h *WalletHandler) ListTopUps(w http.ResponseWriter, r *http.Request) {
	topUps, err := h.wallets.ListTopUps(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, topUps)
}

// SettleCommission handles POST /api/v1/jobs/{id}/settle
func (h *WalletHandler) SettleCommission(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid job id"})
		return
	}

	job, err := h.wallets.SettleCommission(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, job)
}

// GetWallet handles GET /api/v1/providers/{username}/wallet
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.wallets.GetWallet(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, wallet)
}

// GetLedgerEntries handles GET /api/v1/providers/{username}/transactions
func (h *WalletHandler) GetLedgerEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.wallets.GetLedgerEntries(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, entries)
}
