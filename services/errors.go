package services

import "errors"

var (
	// ErrInvalidInput marks a request field that fails validation before
	// any storage access; always wrapped with the offending field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingBiometricData is returned when one or more of the six
	// biometric fields required by the intake formulas is absent.
	ErrMissingBiometricData = errors.New("biometric profile incomplete")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFoodNotFound is returned when a catalog item does not exist.
	ErrFoodNotFound = errors.New("food item not found")

	// ErrMealNotFound is returned when the referenced meal does not exist.
	ErrMealNotFound = errors.New("meal not found")

	// ErrLedgerNotFound is returned when consumption is applied to a day
	// that has no intake row yet; callers must create it first.
	ErrLedgerNotFound = errors.New("no daily intake recorded for this day")

	// ErrLedgerUpdateFailed wraps storage failures while writing a ledger
	// row; always wrapped with the acting user id.
	ErrLedgerUpdateFailed = errors.New("daily intake update failed")
)
