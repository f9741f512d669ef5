package config

import (
	"errors"
	"os"
)

// IgnoreCaseEnv enables case-insensitive matching when present in the
// environment, whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

// ErrInsufficientArguments is returned by Build when the query or path is missing.
var ErrInsufficientArguments = errors.New("not enough arguments")

// RunConfig describes a single search run.
type RunConfig struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Build constructs a RunConfig from the process arguments. args[0] is the
// program name. The query and path are taken verbatim; the path is not
// checked here, a missing file only fails when it is read.
func Build(args []string, ignoreCase bool) (RunConfig, error) {
	if len(args) < 3 {
		return RunConfig{}, ErrInsufficientArguments
	}

	return RunConfig{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}

// BuildFromEnv is Build with the case flag taken from IGNORE_CASE.
func BuildFromEnv(args []string) (RunConfig, error) {
	return Build(args, IgnoreCaseEnabled(os.LookupEnv))
}

// IgnoreCaseEnabled reports whether IGNORE_CASE is set according to lookup.
func IgnoreCaseEnabled(lookup func(string) (string, bool)) bool {
	_, ok := lookup(IgnoreCaseEnv)
	return ok
}
