package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"rental-calculator/domain"
	"rental-calculator/service"
)

const maxRequestBody = 1 << 16

type RentalHandler struct {
	service *service.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service *service.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{service: service, log: log}
}

func (h *RentalHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	// Decodificar request; campos desconocidos se rechazan en vez de ignorarse
	var input domain.RentalInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		h.log.Debug("rejecting request body", zap.Error(err))
		writeError(w, h.log, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// Calcular análisis
	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		h.writeCalculationError(w, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

func (h *RentalHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.log, http.StatusOK, domain.DefaultRentalInput())
}

func (h *RentalHandler) writeCalculationError(w http.ResponseWriter, err error) {
	var inputErr *service.InputError
	var degenerate *service.DegenerateError

	switch {
	case errors.As(err, &inputErr):
		writeError(w, h.log, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: inputErr.Field})
	case errors.As(err, &degenerate):
		writeError(w, h.log, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Metric: degenerate.Metric})
	default:
		h.log.Error("rental calculation failed", zap.Error(err))
		writeError(w, h.log, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
