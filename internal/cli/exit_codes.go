package cli

import "github.com/scanpathlab/scanpda/internal/errors"

// Exit codes for the scanpda CLI. These support scripting and CI
// integration; rejected traces are normal outcomes and do not affect the
// exit code unless --fail-on-mismatch asks for it.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitRuntime indicates a runtime failure.
	ExitRuntime = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 2

	// ExitConfiguration indicates invalid configuration or alphabet.
	ExitConfiguration = 3

	// ExitDataset indicates an unreadable or malformed trace file.
	ExitDataset = 4
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitRuntime
	}
	switch cliErr.Category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfiguration
	case errors.Dataset:
		return ExitDataset
	default:
		return ExitRuntime
	}
}
