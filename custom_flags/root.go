// Package custom_flags provides custom flag types for command-line argument parsing.
// It implements validated flag types usable with the cobra CLI framework.
package custom_flags

import (
	"regexp"

	"github.com/Arctize/dnfy/custom_errors"
)

// executableFlag represents a flag whose value names an executable:
// a bare command name or a path, with no whitespace.
type executableFlag struct {
	value    string
	flagName string
}

// NewExecutableFlag creates a new executableFlag with the given flag name.
func NewExecutableFlag(flagName string) *executableFlag {
	return &executableFlag{
		flagName: flagName,
	}
}

// String returns the flag's value as a string.
func (e executableFlag) String() string {
	return e.value
}

// Set validates and sets the flag's value, rejecting empty values and values
// containing whitespace.
func (e *executableFlag) Set(value string) error {
	match, err := regexp.MatchString(`^\S+$`, value)

	if err != nil {
		return err
	}

	if !match {
		return custom_errors.CreateInvalidFlagErrorWithMessage(
			custom_errors.FlagName(e.flagName),
			"must be a command name or path without whitespace",
		)
	}

	e.value = value
	return nil
}

// Type returns the flag type as a string.
func (e executableFlag) Type() string {
	return "string"
}
