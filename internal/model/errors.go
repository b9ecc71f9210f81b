package model

import (
	"errors"
	"fmt"
)

// Entity-shape failures raised by Validate methods before any persistence.
var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrDuplicateAnswer     = errors.New("can't give more than one answer when the question suggests one answer")
	ErrInvalidScore        = errors.New("score must be a non-negative integer")
	ErrGenerationExhausted = errors.New("id generation attempts exhausted, please try again")
	ErrAnswerAlreadyGraded = errors.New("answer is already graded")
)

// InvariantViolation reports a rejected write: a field combination that
// breaks an entity shape rule. The write never reaches the database.
type InvariantViolation struct {
	Field  string
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func violation(field, reason string) *InvariantViolation {
	return &InvariantViolation{Field: field, Reason: reason}
}

// IsViolation reports whether err (or anything it wraps) is an InvariantViolation.
func IsViolation(err error) bool {
	var v *InvariantViolation
	return errors.As(err, &v)
}
