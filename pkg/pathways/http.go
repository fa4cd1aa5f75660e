package pathways

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/housinglink/pathways/pkg/common/logger"
	"github.com/housinglink/pathways/pkg/pipeline"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/pathways/placements", h.handlePlacements).Methods(http.MethodGet)
	router.HandleFunc("/pathways/routes", h.handleRoutes).Methods(http.MethodGet)
	router.HandleFunc("/pathways/returns", h.handleReturns).Methods(http.MethodGet)
	router.HandleFunc("/pathways/categories", h.handleCategories).Methods(http.MethodGet)
}

func (h *HTTPHandler) handlePlacements(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.WindowTable(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to build window table")
		return
	}
	writeJSON(w, t)
}

func (h *HTTPHandler) handleRoutes(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.Routes(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to summarise routes")
		return
	}
	writeJSON(w, summaries)
}

func (h *HTTPHandler) handleReturns(w http.ResponseWriter, r *http.Request) {
	returns, err := h.service.Returns(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to evaluate returns")
		return
	}
	writeJSON(w, returns)
}

func (h *HTTPHandler) handleCategories(w http.ResponseWriter, r *http.Request) {
	tallies, err := h.service.Categories(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to tally categories")
		return
	}
	writeJSON(w, tallies)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, pipeline.ErrNoRuns) {
		http.Error(w, "no runs recorded", http.StatusNotFound)
		return
	}
	logger.Log.WithError(err).Error(msg)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
