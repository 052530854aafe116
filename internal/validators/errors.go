package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrUnknownField is returned when a scoped field does not exist.
	ErrUnknownField = errors.New("unknown field for validation")
	// ErrValidation wraps every rule violation; the message lists the fields.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidBlogID is returned for a non-positive blog ID.
	ErrInvalidBlogID = errors.New("invalid blog ID")
)
