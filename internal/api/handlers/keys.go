package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type KeysHandler struct {
	keyService *service.KeyService
}

func NewKeysHandler(keyService *service.KeyService) *KeysHandler {
	return &KeysHandler{keyService: keyService}
}

type GenerateKeysRequest struct {
	SoftwareID   string `json:"softwareId"`
	Count        int    `json:"count"`
	ValidityDays int    `json:"validityDays"`
}

type GenerateKeysResponse struct {
	Keys []*domain.Key `json:"keys"`
}

func (h *KeysHandler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.keyService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [keys.List] failed to list keys: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, keys)
}

func (h *KeysHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	softwareID, err := uuid.Parse(req.SoftwareID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Software not found")
		return
	}

	keys, err := h.keyService.Generate(r.Context(), softwareID, req.Count, req.ValidityDays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, "Count must be greater than zero")
		case errors.Is(err, service.ErrSoftwareNotFound):
			respondError(w, http.StatusNotFound, "Software not found")
		default:
			log.Printf("ERROR [keys.Generate] failed to generate keys: %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, GenerateKeysResponse{Keys: keys})
}

func (h *KeysHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Key not found")
		return
	}

	if err := h.keyService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			respondError(w, http.StatusNotFound, "Key not found")
			return
		}
		log.Printf("ERROR [keys.Delete] failed to delete key: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Key deleted"})
}
