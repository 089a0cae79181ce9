package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found for the
// requesting owner. A record that exists but belongs to another user yields
// the same error so ownership is never leaked.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUpstreamUnavailable indicates that an external provider was unreachable,
// returned an error status, or produced an unparseable response. The insight
// service absorbs this internally; it never crosses the API boundary.
var ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
