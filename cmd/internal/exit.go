package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/cloak64/pkg/cloak"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitUsage        = 1
	ExitUnknownMode  = 2
	ExitReadFailure  = 3
	ExitInvalidInput = 4
	ExitWriteFailure = 5
)

// ExitCode maps an error returned from cloak or the file helpers to a process exit code.
// A nil error is ExitOK, and errors that aren't recognized are treated as usage errors.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, cloak.ErrReadFailure), errors.Is(err, cloak.ErrEmptyInput):
		return ExitReadFailure
	case errors.Is(err, cloak.ErrTooSmall), errors.Is(err, cloak.ErrTooLarge),
		errors.Is(err, cloak.ErrSignatureMismatch), errors.Is(err, cloak.ErrCorrupt):
		return ExitInvalidInput
	case errors.Is(err, cloak.ErrWriteFailure):
		return ExitWriteFailure
	default:
		return ExitUsage
	}
}

// Diagnostics is where Echo writes.
var Diagnostics io.Writer = os.Stderr

// Echo writes a diagnostic line for the user, without any logging formatting.
// A trailing newline is added if msg doesn't end with one.
func Echo(msg string, args ...any) {
	line := fmt.Sprintf(msg, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, _ = io.WriteString(Diagnostics, line)
}
