package pagination

import "errors"

// ErrCopyFailed is returned by [Copy] when the source record cannot be
// copied into the target type.
var ErrCopyFailed = errors.New("structural copy failed")
