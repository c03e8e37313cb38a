// Package errors provides centralized error definitions for the module.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Card build errors. Both are terminal for a single build call; no partial
// card is returned alongside them.
var (
	// ErrNotEnoughData indicates the page metadata carried neither a
	// platform-usable title nor a description.
	ErrNotEnoughData = errors.New("not enough metadata to build a card")

	// ErrTwitterNoCardFound indicates the page declares no twitter:card or
	// og:type, so no Twitter card form can be chosen.
	ErrTwitterNoCardFound = errors.New("no twitter card type declared")
)

// Input validation errors.
var (
	// ErrUnknownPlatform indicates a platform value outside the supported set.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
