package apperrors

import "errors"

var (
	// ErrNotFound means a resolver or record lookup found nothing. Handlers
	// map it to 404; it is never conflated with a connectivity failure.
	ErrNotFound = errors.New("not found")

	// ErrStoreNotConfigured means an operation needs the restaurant store
	// but no DATABASE_URL is set. Non-UUID resolution yields ErrNotFound in
	// this state; write endpoints surface it as a 500.
	ErrStoreNotConfigured = errors.New("store not configured")

	// ErrUpstream wraps a store or completion-endpoint failure. Handlers
	// map it to 502 with a generic message.
	ErrUpstream = errors.New("upstream failure")
)
