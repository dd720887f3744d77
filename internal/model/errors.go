package model

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrCapacityExceeded = errors.New("event is full")
	ErrTxAborted        = errors.New("transaction aborted")
	ErrUpstream         = errors.New("upstream service error")
	ErrDecode           = errors.New("record decode error")
)
