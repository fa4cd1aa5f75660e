package pipeline

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/housinglink/pathways/pkg/common/logger"
	"github.com/housinglink/pathways/pkg/common/models"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/pipeline/run", h.handleRun).Methods(http.MethodPost)
	router.HandleFunc("/pipeline/runs/latest", h.handleLatestRun).Methods(http.MethodGet)
	router.HandleFunc("/pipeline/placements", h.handlePlacements).Methods(http.MethodGet)
}

func (h *HTTPHandler) handleRun(w http.ResponseWriter, r *http.Request) {
	req := models.RunRequest{IncludeCorrections: true, IncludeAssumptions: true}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	summary, err := h.service.Run(r.Context(), req)
	if err != nil {
		logger.Log.WithError(err).Error("Pipeline run failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(summary)
}

func (h *HTTPHandler) handleLatestRun(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.LatestSummary(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoRuns) {
			http.Error(w, "no runs recorded", http.StatusNotFound)
			return
		}
		logger.Log.WithError(err).Error("Failed to fetch latest run")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *HTTPHandler) handlePlacements(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.LatestTable(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoRuns) {
			http.Error(w, "no runs recorded", http.StatusNotFound)
			return
		}
		logger.Log.WithError(err).Error("Failed to fetch placements")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(table)
}
