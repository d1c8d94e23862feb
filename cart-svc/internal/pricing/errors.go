package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVariantGroup   = errors.New("invalid variant group")
	ErrInvalidVariant        = errors.New("invalid variant")
	ErrDuplicateVariantGroup = errors.New("variant group selected more than once")

	ErrInvalidAddonGroup   = errors.New("invalid addon group")
	ErrInvalidAddon        = errors.New("invalid addon")
	ErrDuplicateAddonGroup = errors.New("addon group selected more than once")
	ErrDuplicateAddon      = errors.New("addon selected more than once")
	ErrTooManyAddons       = errors.New("too many addons selected")
	ErrTooFewAddons        = errors.New("too few addons selected")

	ErrMissingPrice    = errors.New("price not available")
	ErrMissingTaxRate  = errors.New("tax rate not available")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrRestaurantMismatch = errors.New("menu item does not belong to restaurant")

	ErrInvalidRefundSettlement = errors.New("invalid refund settlement")
)

// Stable codes handed to clients for display or localisation.
const (
	CodeInvalidVariantGroup   = 1001
	CodeInvalidVariant        = 1002
	CodeDuplicateVariantGroup = 1003

	CodeInvalidAddonGroup   = 1101
	CodeInvalidAddon        = 1102
	CodeDuplicateAddonGroup = 1103
	CodeDuplicateAddon      = 1104
	CodeTooManyAddons       = 1105
	CodeTooFewAddons        = 1106

	CodeMissingPrice    = 1201
	CodeMissingTaxRate  = 1202
	CodeInvalidQuantity = 1203

	CodeMenuItemNotFound   = 1301
	CodeRestaurantMismatch = 1302

	CodeInvalidRefundSettlement = 1401
)

var codes = map[error]int{
	ErrInvalidVariantGroup:     CodeInvalidVariantGroup,
	ErrInvalidVariant:          CodeInvalidVariant,
	ErrDuplicateVariantGroup:   CodeDuplicateVariantGroup,
	ErrInvalidAddonGroup:       CodeInvalidAddonGroup,
	ErrInvalidAddon:            CodeInvalidAddon,
	ErrDuplicateAddonGroup:     CodeDuplicateAddonGroup,
	ErrDuplicateAddon:          CodeDuplicateAddon,
	ErrTooManyAddons:           CodeTooManyAddons,
	ErrTooFewAddons:            CodeTooFewAddons,
	ErrMissingPrice:            CodeMissingPrice,
	ErrMissingTaxRate:          CodeMissingTaxRate,
	ErrInvalidQuantity:         CodeInvalidQuantity,
	ErrMenuItemNotFound:        CodeMenuItemNotFound,
	ErrRestaurantMismatch:      CodeRestaurantMismatch,
	ErrInvalidRefundSettlement: CodeInvalidRefundSettlement,
}

// ValidationError wraps a sentinel with its code and a message naming the
// offending entity.
type ValidationError struct {
	Code    int
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    codes[err],
		Err:     err,
		Details: fmt.Sprintf(format, args...),
	}
}

// NewValidationError is used by callers that detect item-level problems
// (unknown menu item, bad quantity) before the engine runs.
func NewValidationError(err error, details string) *ValidationError {
	return &ValidationError{Code: codes[err], Err: err, Details: details}
}

// CodeOf returns the stable code carried by err, or 0 when err is not a
// validation failure.
func CodeOf(err error) int {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Code
	}
	return 0
}
