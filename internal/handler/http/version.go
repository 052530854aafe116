package http

import (
	"net/http"
)

// getServerVersion reports the configured application version together with
// the build metadata.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.buildInfo
	info.Version = h.services.AppInfoService.GetAppVersion(r.Context())

	writeSuccess(w, r, info)
}
