package repository

import "errors"

// ErrStoreUnavailable is returned by every repository operation when no
// database connection is configured. Callers decide per endpoint whether to
// degrade to an empty result or surface an unavailable status.
var ErrStoreUnavailable = errors.New("document store unavailable")
