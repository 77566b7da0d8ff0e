package uploadkit

import "errors"

// Sentinel errors. Malformed upload input never produces one of these; they
// cover the programmer-error class only (see the package degradation
// policy).
var (
	ErrNotSupported = errors.New("operation not supported")
	ErrNoPayload    = errors.New("data URI payload did not decode")
)
