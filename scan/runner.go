package scan

import (
	"context"
	"io"
	"os"

	"github.com/betterleaks/minigrep"
	"github.com/betterleaks/minigrep/config"
	"github.com/betterleaks/minigrep/logging"
	"github.com/betterleaks/minigrep/search"
)

type Runner struct {
	Config config.RunConfig

	// Stdin is read when Config.FilePath is "-". Defaults to os.Stdin.
	Stdin io.Reader

	// Out receives the matched lines. Defaults to os.Stdout.
	Out io.Writer
}

// Search runs the search selected by ignoreCase over the fragment.
func Search(fragment minigrep.Fragment, query string, ignoreCase bool) []string {
	if ignoreCase {
		return search.SearchCaseInsensitive(query, fragment.Raw)
	}
	return search.Search(query, fragment.Raw)
}

// Run reads the input, searches it and prints the matching lines. Nothing
// is printed unless the read succeeded. It returns the number of lines
// printed; zero matches is not an error.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stdin, out := r.Stdin, r.Out
	if stdin == nil {
		stdin = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	logger := logging.With().Str("path", r.Config.FilePath).Logger()

	fragment, err := ReadFragment(r.Config.FilePath, stdin)
	if err != nil {
		return 0, err
	}
	logger.Debug().Int("bytes", fragment.Size()).Msg("read input")

	results := Search(fragment, r.Config.Query, r.Config.IgnoreCase)
	logger.Debug().
		Bool("ignore_case", r.Config.IgnoreCase).
		Int("matches", len(results)).
		Msg("search complete")

	if err := WriteLines(out, results); err != nil {
		return 0, err
	}
	return len(results), nil
}
