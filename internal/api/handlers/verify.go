package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/service"
)

// VerifyHandler serves the public redemption check. It is the only
// endpoint end users touch.
type VerifyHandler struct {
	keyService *service.KeyService
}

func NewVerifyHandler(keyService *service.KeyService) *VerifyHandler {
	return &VerifyHandler{keyService: keyService}
}

type VerifyKeyRequest struct {
	Code string `json:"code"`
}

type VerifyKeyResponse struct {
	Valid      bool             `json:"valid"`
	Used       bool             `json:"used,omitempty"`
	Expired    bool             `json:"expired,omitempty"`
	Message    string           `json:"message"`
	Software   *domain.Software `json:"software,omitempty"`
	ValidUntil *time.Time       `json:"validUntil,omitempty"`
}

func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		respondJSON(w, http.StatusBadRequest, VerifyKeyResponse{Message: "Key code is required"})
		return
	}

	result, err := h.keyService.Verify(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			respondJSON(w, http.StatusNotFound, VerifyKeyResponse{Message: "Key not found"})
			return
		}
		log.Printf("ERROR [verify.Verify] verification failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch {
	case result.Used:
		respondJSON(w, http.StatusBadRequest, VerifyKeyResponse{Used: true, Message: "Key has already been used"})
	case result.Expired:
		respondJSON(w, http.StatusBadRequest, VerifyKeyResponse{Expired: true, Message: "Key has expired"})
	default:
		respondJSON(w, http.StatusOK, VerifyKeyResponse{
			Valid:      true,
			Message:    "Key is valid",
			Software:   result.Software,
			ValidUntil: result.ValidUntil,
		})
	}
}
