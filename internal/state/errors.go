package state

import "codeberg.org/mvbarbosa/robodata/internal/errors"

const (
	// Configuration errors
	ErrInvalidHistoryLimit = errors.ErrorCode("state_invalid_history_limit")
	ErrNilDocumentStore    = errors.ErrorCode("state_nil_document_store")

	// Cycle errors
	ErrCycleCancelled = errors.ErrorCode("state_cycle_cancelled")
)
