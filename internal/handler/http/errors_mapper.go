package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/asta/blog-keeper/internal/adapter"
	"github.com/asta/blog-keeper/internal/app"
	"github.com/asta/blog-keeper/internal/service"
	"github.com/asta/blog-keeper/internal/store"
	"github.com/asta/blog-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidRequestBody:         http.StatusBadRequest,
	ErrInvalidQueryParam:          http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrMalformedTags:           http.StatusBadRequest,
	service.ErrBadCredentials:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrValidation:    http.StatusBadRequest,
	validators.ErrInvalidBlogID: http.StatusBadRequest,

	store.ErrBlogNotFound:      http.StatusNotFound,
	store.ErrConflict:          http.StatusConflict,
	store.ErrUserAlreadyExists: http.StatusConflict,

	adapter.ErrEmptyObjectKey: http.StatusBadRequest,
	adapter.ErrObjectNotFound: http.StatusNotFound,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:   app.MsgInvalidDataProvided,
	http.StatusUnauthorized: app.MsgUnauthorized,
	http.StatusNotFound:     app.MsgNotFound,
	http.StatusConflict:     app.MsgConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Validation
// failures carry their field list; everything else gets a fixed message
// so internal causes never leave the server.
func messageFromError(err error, status int) string {
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return app.MsgTokenIsExpiredOrInvalid
	}
	if errors.Is(err, service.ErrBadCredentials) {
		return app.MsgInvalidLoginPassword
	}
	if detail, ok := validationDetail(err); ok {
		return detail
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}

// validationDetail extracts the "validation failed: ..." tail of a wrapped
// validation error.
func validationDetail(err error) (string, bool) {
	if !errors.Is(err, validators.ErrValidation) {
		return "", false
	}

	text := err.Error()
	if i := strings.Index(text, validators.ErrValidation.Error()); i >= 0 {
		return text[i:], true
	}
	return validators.ErrValidation.Error(), true
}
