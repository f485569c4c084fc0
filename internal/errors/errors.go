// Package errors gives the CLI surface one exit path: every command failure
// prints with the same "Error: " prefix and lands in the log file before the
// process exits.
package errors

import (
	"fmt"
	"os"

	"github.com/mwidmann/remindcal/internal/logger"
)

// Format renders err with the CLI's "Error: " prefix. Nil renders as "".
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a formatted message.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr, and exits 1. A nil error is a no-op,
// so callers can pass a command result through unconditionally.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal for a formatted message. It always exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
