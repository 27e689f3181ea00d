// Package errors renders engine errors for the terminal. Known domain
// sentinels carry an actionable hint alongside the raw message.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/jiwoolee/contestpilot/internal/logger"
	"github.com/jiwoolee/contestpilot/internal/scheduler"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Hint returns actionable guidance for known domain errors, or an empty
// string when the error needs none.
func Hint(err error) string {
	switch {
	case errors.Is(err, scheduler.ErrNoDeadline):
		return "Set a deadline first, then generate the schedule."
	case errors.Is(err, scheduler.ErrPastDeadline):
		return "The deadline has passed; there are no days left to schedule."
	}
	return ""
}

// Fatal logs the error, prints it with any hint, and exits with code 1
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
	os.Exit(1)
}
