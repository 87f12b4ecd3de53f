package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Purchase rejections
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgMaxLevelReached   = "max level reached"

	// Catalog defects
	ErrMsgUnknownUpgrade   = "unknown upgrade"
	ErrMsgMalformedCatalog = "malformed catalog"
	ErrMsgTaskNotFound     = "task not found"

	// Task errors
	ErrMsgTaskRequirementNotMet = "task requirement not met"
	ErrMsgTaskAlreadyCompleted  = "task already completed"

	// Persistence errors
	ErrMsgPersistenceFailure = "persistence failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrMaxLevelReached   = errors.New(ErrMsgMaxLevelReached)

	ErrUnknownUpgrade   = errors.New(ErrMsgUnknownUpgrade)
	ErrMalformedCatalog = errors.New(ErrMsgMalformedCatalog)
	ErrTaskNotFound     = errors.New(ErrMsgTaskNotFound)

	ErrTaskRequirementNotMet = errors.New(ErrMsgTaskRequirementNotMet)
	ErrTaskAlreadyCompleted  = errors.New(ErrMsgTaskAlreadyCompleted)

	ErrPersistenceFailure = errors.New(ErrMsgPersistenceFailure)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
