package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Gav1n0112/keya/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SoftwareHandler struct {
	softwareService *service.SoftwareService
}

func NewSoftwareHandler(softwareService *service.SoftwareService) *SoftwareHandler {
	return &SoftwareHandler{softwareService: softwareService}
}

type SoftwareRequest struct {
	Name         string   `json:"name"`
	FileType     string   `json:"fileType"`
	DownloadURLs []string `json:"downloadUrls"`
}

func (h *SoftwareHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.softwareService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [software.List] failed to list software: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *SoftwareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SoftwareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	software, err := h.softwareService.Create(r.Context(), service.SoftwareInput{
		Name:         req.Name,
		FileType:     req.FileType,
		DownloadURLs: req.DownloadURLs,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Name, file type and download URLs are required")
			return
		}
		log.Printf("ERROR [software.Create] failed to create software: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, software)
}

func (h *SoftwareHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Software not found")
		return
	}

	var req SoftwareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	software, err := h.softwareService.Update(r.Context(), id, service.SoftwareInput{
		Name:         req.Name,
		FileType:     req.FileType,
		DownloadURLs: req.DownloadURLs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, "Name, file type and download URLs are required")
		case errors.Is(err, service.ErrSoftwareNotFound):
			respondError(w, http.StatusNotFound, "Software not found")
		default:
			log.Printf("ERROR [software.Update] failed to update software: %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, software)
}

func (h *SoftwareHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Software not found")
		return
	}

	if err := h.softwareService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSoftwareNotFound) {
			respondError(w, http.StatusNotFound, "Software not found")
			return
		}
		log.Printf("ERROR [software.Delete] failed to delete software: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Software and associated keys deleted"})
}
