package http

import (
	"net/http"

	"go.uber.org/zap"
)

const serviceName = "rental-calculator"

func HealthHandler(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": serviceName,
		})
	}
}
