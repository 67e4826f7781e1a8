// Package domain provides core types for the jury engine.
package domain

// ExitCode represents the exit status of the CLI.
type ExitCode int

const (
	// ExitPass indicates the jury vote completed and passed.
	ExitPass ExitCode = 0
	// ExitFail indicates the jury vote completed and failed (or abstained).
	ExitFail ExitCode = 1
	// ExitError indicates the vote could not be completed.
	ExitError ExitCode = 2
	// ExitInterrupted indicates the vote was interrupted by a signal.
	ExitInterrupted ExitCode = 130
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}
