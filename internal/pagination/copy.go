package pagination

import (
	"encoding/json"
	"fmt"
)

// Copy builds a T from src by matching serialized field names: src is
// encoded to JSON and decoded into a zero T. Fields of T missing in src keep
// their zero value and fields of src unknown to T are ignored.
//
// Copy fails when a field present on both sides has incompatible types
// (e.g. a string in src and a slice in T).
func Copy[T, D any](src D) (T, error) {
	var dst T

	raw, err := json.Marshal(src)
	if err != nil {
		return dst, fmt.Errorf("%w: encode %T: %w", ErrCopyFailed, src, err)
	}

	if err := json.Unmarshal(raw, &dst); err != nil {
		return dst, fmt.Errorf("%w: decode into %T: %w", ErrCopyFailed, dst, err)
	}

	return dst, nil
}
