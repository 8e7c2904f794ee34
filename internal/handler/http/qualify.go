package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-config/internal/logger"
	"github.com/MKhiriev/go-api-config/internal/utils"
)

const endpointQueryParam = "endpoint"

func (h *Handler) qualifyEndpoint(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	if !query.Has(endpointQueryParam) {
		log.Warn().Str("func", "*Handler.qualifyEndpoint").Msg(ErrMissingEndpoint.Error())
		http.Error(w, ErrMissingEndpoint.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteText(w, h.api.Qualify(query.Get(endpointQueryParam)), http.StatusOK)
}
