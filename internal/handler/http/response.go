package http

import (
	"net/http"

	"github.com/asta/blog-keeper/internal/app"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/utils"
	"github.com/asta/blog-keeper/models"
)

// writeResponse wraps data in the response envelope. The envelope status
// always equals the HTTP status.
func writeResponse(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	envelope := models.Response{
		Status:  models.ResultStatus(status),
		Message: message,
		Data:    data,
	}

	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	writeResponse(w, r, http.StatusOK, app.MsgSuccess, data)
}

// writeError maps err to a status and a client-safe message. Server-side
// failures are logged with their cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	writeResponse(w, r, status, messageFromError(err, status), nil)
}
