// Package custom_errors provides error handling functionality for flag-related and selection-related operations.
package custom_errors

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidFlag represents an error indicating an invalid flag.
var ErrInvalidFlag = errors.New("invalid flag")

// ErrInvalidSelection represents an error indicating an invalid selection token.
var ErrInvalidSelection = errors.New("invalid selection")

// FlagName is a string type representing the name of a flag.
type FlagName string

// Error validates the FlagName and returns an error if it's invalid.
// A valid flag name is lowercase alphanumeric, with single hyphens allowed between segments.
func (self FlagName) Error() error {
	regex := regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	if !regex.MatchString(string(self)) {
		return fmt.Errorf("%w: %s must be kebab-case alphanumeric: %s", ErrInvalidFlag, self, string(self))
	}
	return nil
}

// CreateInvalidFlagErrorWithMessage creates an error with a custom message for an invalid flag.
// It first validates the flag name and returns the validation error if present.
var CreateInvalidFlagErrorWithMessage = func(flagName FlagName, message string) error {
	if err := flagName.Error(); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s %s", ErrInvalidFlag, flagName, message)
}

// CreateInvalidSelectionError creates an error describing a selection token that
// could not be mapped onto a displayed result index.
var CreateInvalidSelectionError = func(token string, resultCount int) error {
	return fmt.Errorf("%w: %q is not a number between 1 and %d", ErrInvalidSelection, token, resultCount)
}
