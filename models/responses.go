package models

import "net/http"

// ResultStatus is the status code carried inside the response envelope.
// Its values mirror the HTTP status codes of the response.
type ResultStatus int

const (
	StatusSuccess      ResultStatus = http.StatusOK
	StatusCreated      ResultStatus = http.StatusCreated
	StatusBadRequest   ResultStatus = http.StatusBadRequest
	StatusUnauthorized ResultStatus = http.StatusUnauthorized
	StatusNotFound     ResultStatus = http.StatusNotFound
	StatusConflict     ResultStatus = http.StatusConflict
	StatusServerError  ResultStatus = http.StatusInternalServerError
)

// Response is the uniform envelope of every API response.
type Response struct {
	// Status mirrors the HTTP status code.
	Status ResultStatus `json:"status"`

	// Message is a short human-readable outcome description.
	// It never contains internal error details.
	Message string `json:"message,omitempty"`

	// Data is the operation payload; null for operations without one.
	Data any `json:"data"`
}

// SignedURL is a time-limited download link to a stored object.
type SignedURL struct {
	// URL is the signed private download URL.
	URL string `json:"url"`

	// Expires is the unix timestamp (seconds) after which URL stops working.
	Expires int64 `json:"expires"`
}

// UploadToken authorizes a single client-side upload of an object.
type UploadToken struct {
	// Token is the upload credential expected by the storage upload API.
	Token string `json:"token"`

	// Key is the object key the token is scoped to.
	Key string `json:"key"`

	// Expires is the unix timestamp (seconds) after which Token is rejected.
	Expires int64 `json:"expires"`
}
