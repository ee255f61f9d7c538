package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
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

// ViolationReason identifies which budget/membership rule a mutation broke.
// Callers rely on the reason to pick the right HTTP status and message.
type ViolationReason string

const (
	ReasonAlreadyRostered    ViolationReason = "already-rostered"
	ReasonInvalidSalary      ViolationReason = "invalid-salary"
	ReasonInsufficientBudget ViolationReason = "insufficient-budget"
	ReasonNotAMember         ViolationReason = "not-a-member"
	ReasonBelowPayrollFloor  ViolationReason = "below-payroll-floor"
)

// DomainViolationError represents a violation of the club budget invariant
// or the employee membership rules
type DomainViolationError struct {
	Reason  ViolationReason
	Message string
}

func (e *DomainViolationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Reason)
}

// Is enables errors.Is() comparison for DomainViolationError by reason
func (e *DomainViolationError) Is(target error) bool {
	t, ok := target.(*DomainViolationError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// ValidationError represents a validation error
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrClubNotFound     = &NotFoundError{Entity: "club"}
	ErrPlayerNotFound   = &NotFoundError{Entity: "player"}
	ErrCoachNotFound    = &NotFoundError{Entity: "coach"}
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
)

// Budget Invariant Errors
var (
	ErrAlreadyRostered    = &DomainViolationError{Reason: ReasonAlreadyRostered, Message: "employee is already assigned to a club"}
	ErrInvalidSalary      = &DomainViolationError{Reason: ReasonInvalidSalary, Message: "employee must have a valid salary defined"}
	ErrInsufficientBudget = &DomainViolationError{Reason: ReasonInsufficientBudget, Message: "insufficient budget to add employee"}
	ErrNotAMember         = &DomainViolationError{Reason: ReasonNotAMember, Message: "employee is not assigned to this club"}
	ErrBelowPayrollFloor  = &DomainViolationError{Reason: ReasonBelowPayrollFloor, Message: "budget cannot be reduced below the total salary of the club's players and coaches"}
)

// Concurrency and Auth Errors
var (
	// ErrConcurrencyConflict is returned by repositories when a save targets a
	// stale aggregate version. Services retry the whole operation from a fresh
	// load before surfacing it.
	ErrConcurrencyConflict = errors.New("aggregate was modified concurrently")

	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)
