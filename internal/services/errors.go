package services

import "errors"

var (
	// ErrUnauthenticated means no usable session: missing, malformed,
	// expired or stale token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrStoreUnavailable means the relational store could not service
	// the request. Distinct from "record not found".
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUserNotFound     = errors.New("user not found")
	ErrTodoNotFound     = errors.New("todo not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
)
