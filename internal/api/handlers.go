package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/internal/types"
)

type Handlers struct {
	service VaultService
}

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type VaultsByOwnerResponse struct {
	VaultIDs []string `json:"vault_ids"`
}

type IndexVaultRequest struct {
	FactoryID string  `json:"factory_id"`
	Vault     string  `json:"vault"`
	TxHash    *string `json:"tx_hash"`
}

type IndexVaultResponse struct {
	FactoryID string           `json:"factory_id"`
	Vault     string           `json:"vault"`
	Owner     string           `json:"owner"`
	State     types.VaultState `json:"state"`
	TxHash    *string          `json:"tx_hash"`
}

func (h *Handlers) Healthcheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Healthcheck(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// GetVaultsByOwner handles GET /api/vaults-by-owner?owner=<id>&factory_id=<id>
func (h *Handlers) GetVaultsByOwner(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ids, err := h.service.GetVaultIDsByOwner(r.Context(), query.Get("factory_id"), query.Get("owner"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, VaultsByOwnerResponse{VaultIDs: ids})
}

// IndexVault handles POST /api/index-vault, the vault is synced from chain before responding.
func (h *Handlers) IndexVault(w http.ResponseWriter, r *http.Request) {
	var req IndexVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request body"))
		return
	}

	if req.FactoryID == "" || req.Vault == "" {
		writeError(w, r, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "factory_id and vault are required"))
		return
	}

	doc, err := h.service.SyncVault(r.Context(), req.FactoryID, req.Vault, req.TxHash)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, IndexVaultResponse{
		FactoryID: doc.FactoryID,
		Vault:     doc.ID,
		Owner:     doc.Owner,
		State:     doc.State,
		TxHash:    doc.TxHash,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
	}
}

// writeError answers with the status of err. Internal errors are logged and their details are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	typedErr := types.AsError(err)

	message := typedErr.Error()
	if typedErr.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().
			Err(typedErr).
			Str("errorCode", string(typedErr.ErrorCode)).
			Msg("Request failed")
		if typedErr.ErrorCode == types.InternalServiceError {
			message = "internal service error"
		}
	}

	writeJSON(w, r, typedErr.StatusCode, ErrorResponse{
		ErrorCode: string(typedErr.ErrorCode),
		Message:   message,
	})
}
