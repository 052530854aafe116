package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/internal/utils"
	"github.com/asta/blog-keeper/models"
)

// login handles POST /authenticate/login. Only an unreadable body yields 400.
// Rejected credentials, empty fields included, yield 401 and any other
// authentication failure 500 without the cause.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.LoginDTO
	if err := utils.ReadJSON(r, &dto); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, dto)
	if err != nil {
		if !errors.Is(err, service.ErrBadCredentials) {
			// any other cause is reported as a server error
			err = fmt.Errorf("authentication failed: %s", err)
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Str("user_name", user.UserName).Msg("user logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	writeSuccess(w, r, models.LoginVO{Token: token.SignedString, UserName: user.UserName})
}
