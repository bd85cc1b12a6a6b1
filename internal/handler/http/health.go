package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/hopwhistle/internal/logger"
)

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	resp := healthResponse{Status: "ok", Environment: h.settings.Environment}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
