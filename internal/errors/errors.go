package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is absent or not visible
// to the caller. The two cases are deliberately indistinguishable so private
// boards and projects cannot be enumerated.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a state conflict: a duplicate join, removing the
// last owner of a board, or a duplicate tag name.
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Message == t.Message
}

// ValidationError represents a request that passed schema checks but
// violates a domain rule (e.g. a set-total tally without a work).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ForbiddenError represents an authenticated caller lacking the required role
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrWorkNotFound        = &NotFoundError{Entity: "work"}
	ErrTagNotFound         = &NotFoundError{Entity: "tag"}
	ErrTallyNotFound       = &NotFoundError{Entity: "tally"}
	ErrGoalNotFound        = &NotFoundError{Entity: "goal"}
	ErrLeaderboardNotFound = &NotFoundError{Entity: "leaderboard"}
	ErrTeamNotFound        = &NotFoundError{Entity: "leaderboard team"}
	ErrMemberNotFound      = &NotFoundError{Entity: "leaderboard member"}
)

// Conflict Errors
var (
	ErrTagExists        = &ConflictError{Entity: "tag", Message: "a tag with this name already exists"}
	ErrAlreadyMember    = &ConflictError{Entity: "leaderboard member", Message: "user is already a member of this leaderboard"}
	ErrLastOwner        = &ConflictError{Entity: "leaderboard member", Message: "a leaderboard must retain at least one owner"}
	ErrBoardNotJoinable = &ConflictError{Entity: "leaderboard", Message: "leaderboard is not joinable"}
)

// Validation Errors
var (
	ErrSetTotalRequiresWork = &ValidationError{Field: "work_id", Message: "a set-total tally requires a work to scope the running sum"}
	ErrInvalidDateRange     = &ValidationError{Field: "end_date", Message: "end date precedes start date"}
)

// Authorization Errors
var (
	ErrNotBoardOwner = &ForbiddenError{Message: "only a leaderboard owner may perform this action"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, message string) error {
	return &ConflictError{Entity: entity, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}
