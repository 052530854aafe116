package adapter

import "errors"

var (
	// ErrEmptyObjectKey is returned for an empty object key.
	ErrEmptyObjectKey = errors.New("empty object key")
	// ErrInvalidExpiry is returned for a non-positive expiry.
	ErrInvalidExpiry = errors.New("expiry must be positive")
	// ErrObjectNotFound is returned when the bucket has no object under the key.
	ErrObjectNotFound = errors.New("object not found")
	// ErrUnauthorized is returned when the storage rejects the credentials.
	ErrUnauthorized = errors.New("object storage unauthorized")
	// ErrObjectStorageRequest is returned for any other failed request.
	ErrObjectStorageRequest = errors.New("object storage request failed")
)
