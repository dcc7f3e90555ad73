package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(stderr, prompt+suffix)

	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(stderr, "✓ %s\n", msg)
		} else {
			fmt.Fprintf(stderr, "OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(stderr, "ℹ %s\n", msg)
		} else {
			fmt.Fprintf(stderr, "INFO: %s\n", msg)
		}
	}
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "ERROR: %s\n", msg)
	}
}

// Status messages go to stderr so stdout stays machine-readable
var (
	stdin  io.Reader = os.Stdin
	stderr io.Writer = os.Stderr
)

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// SetOutput redirects status messages and prompts, mainly for tests
func SetOutput(in io.Reader, errOut io.Writer) {
	stdin = in
	stderr = errOut
}
