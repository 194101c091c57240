package feed

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes operation errors.
type ErrorCode string

const (
	// ErrCodeUserNotFound indicates an operation referenced a user id that
	// does not exist in the store.
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	// ErrCodePostNotFound indicates an operation referenced a post id that
	// does not exist in the store.
	ErrCodePostNotFound ErrorCode = "POST_NOT_FOUND"

	// ErrCodeEmptyPost indicates a post had neither content nor media.
	ErrCodeEmptyPost ErrorCode = "EMPTY_POST"

	// ErrCodeInvalidMedia indicates a media URL without a media type or
	// vice versa.
	ErrCodeInvalidMedia ErrorCode = "INVALID_MEDIA"

	// ErrCodeInvalidSeed indicates seed state that violates a store
	// invariant (duplicate ids, asymmetric follow edges, dangling refs).
	ErrCodeInvalidSeed ErrorCode = "INVALID_SEED"
)

// Error is a typed operation error with a machine-readable code.
//
// Referencing a nonexistent entity id is a caller error, surfaced
// explicitly rather than silently ignored.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// EntityID identifies the offending entity, when one exists.
	EntityID string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.EntityID != "" {
		return fmt.Sprintf("%s: %s (id=%s)", e.Code, e.Message, e.EntityID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound returns true if the error is a user or post lookup failure.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeUserNotFound || fe.Code == ErrCodePostNotFound
	}
	return false
}

// IsEmptyPost returns true if the error is an empty-post rejection.
func IsEmptyPost(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Code == ErrCodeEmptyPost
}

// newUserNotFound creates a not-found error for a user id.
func newUserNotFound(id string) *Error {
	return &Error{Code: ErrCodeUserNotFound, Message: "no such user", EntityID: id}
}

// newPostNotFound creates a not-found error for a post id.
func newPostNotFound(id string) *Error {
	return &Error{Code: ErrCodePostNotFound, Message: "no such post", EntityID: id}
}
