package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgValidation      = "validation failed"
	ErrMsgUnknownAction   = "unknown action"
	ErrMsgInvalidQuantity = "quantity must be positive"
	ErrMsgEmptyItemName   = "item name is required"

	// Lookup errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgItemNotFound  = "item not found"
	ErrMsgStatsNotFound = "user stats not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgAlreadyEquipped      = "item is already equipped"
	ErrMsgNotEquipped          = "item is not equipped"

	// Access errors
	ErrMsgForbidden = "caller is not allowed to perform this operation"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrValidation    = errors.New(ErrMsgValidation)
	ErrUnknownAction = errors.New(ErrMsgUnknownAction)

	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrStatsNotFound = errors.New(ErrMsgStatsNotFound)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrAlreadyEquipped      = errors.New(ErrMsgAlreadyEquipped)
	ErrNotEquipped          = errors.New(ErrMsgNotEquipped)

	ErrForbidden = errors.New(ErrMsgForbidden)
)

// IsNotFound reports whether err belongs to the not-found family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrStatsNotFound)
}

// IsValidation reports whether err is caused by bad caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrUnknownAction)
}
