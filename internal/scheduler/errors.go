package scheduler

import "codeberg.org/mvbarbosa/robodata/internal/errors"

const (
	ErrInvalidInterval = errors.ErrorCode("scheduler_invalid_interval")
	ErrAlreadyStarted  = errors.ErrorCode("scheduler_already_started")
	ErrNilRunner       = errors.ErrorCode("scheduler_nil_runner")
)
