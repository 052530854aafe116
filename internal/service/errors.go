package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrBadCredentials      = errors.New("bad credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMalformedTags = errors.New("malformed tags")
)
