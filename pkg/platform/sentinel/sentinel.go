package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and probes return these
// (optionally wrapped) so callers can branch on the fact without parsing
// messages.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: named resource (storage area, log kind) is not configured
// - ErrInvalidState: operation lacks required context (e.g. no session)
// - ErrUnavailable: backing service temporarily unreachable
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
