package dispatch

import (
	"github.com/google/shlex"

	"github.com/napalu/grassplain/errs"
)

// SplitCommandLine splits a shell-style command line into an argv, the first
// element being the program name
func SplitCommandLine(commandLine string) ([]string, error) {
	argv, err := shlex.Split(commandLine)
	if err != nil {
		return nil, errs.NewUsageError(errs.ErrInvalidCommandLine.WithArgs(commandLine).Wrap(err))
	}

	return argv, nil
}
