package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/internal/utils"
)

func (h *Handler) getEnvInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshot := h.api.Snapshot(r.Context())

	if _, err := utils.WriteJSON(w, snapshot, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getEnvInfo").Msg("error writing environment snapshot")
	}
}
