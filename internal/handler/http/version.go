package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-config/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.buildInfo.BuildVersion(), http.StatusOK)
}
