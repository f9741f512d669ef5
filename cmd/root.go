package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/betterleaks/minigrep/config"
	"github.com/betterleaks/minigrep/logging"
	"github.com/betterleaks/minigrep/scan"
	"github.com/betterleaks/minigrep/version"
	"github.com/spf13/cobra"
)

const configDescription = `settings file path
order of precedence:
1. --config/-c
2. env var MINIGREP_CONFIG
3. env var MINIGREP_CONFIG_TOML with the file content
If none of the three options are used, built-in defaults apply`

const (
	exitCodeError = 1
	exitCodeUsage = 2
	// exit code 126: Command invoked cannot execute
	exitCodeUnknownFlag = 126
)

var (
	rootCmd = &cobra.Command{
		Use:   "minigrep [flags] <query> <file_path>",
		Short: "minigrep prints the lines of a file that contain a query",
		Long: `minigrep prints the lines of a file that contain a query.

Matching is a literal substring test. Set IGNORE_CASE (any value) or pass
--ignore-case to match regardless of case. Use "-" as file_path to read
from stdin.`,
		Version:           version.Version,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initRun,
		RunE:              runSearch,
	}

	// settings are resolved once per invocation in initRun
	settings config.Settings
)

// usageError marks errors that should exit with exitCodeUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", configDescription)
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.Flags().BoolP("ignore-case", "i", false, "match regardless of case (same as setting "+config.IgnoreCaseEnv+")")
}

func initRun(cmd *cobra.Command, _ []string) error {
	cfgPath := mustGetStringFlag(cmd, "config")

	var err error
	settings, err = config.ResolveSettings(cfgPath, os.LookupEnv)
	if err != nil {
		return &usageError{err: err}
	}

	initLog(cmd)

	if settings.Origin != "" {
		logging.Debug().Str("origin", settings.Origin).Msg("using settings")
	}
	if !version.Satisfies(version.Version, settings.MinVersion) {
		logging.Warn().Msgf("settings require minigrep %s or newer, running %s", settings.MinVersion, version.Version)
	}
	return nil
}

func initLog(cmd *cobra.Command) {
	ll := mustGetStringFlag(cmd, "log-level")
	if !cmd.Flags().Changed("log-level") && settings.LogLevel != "" {
		ll = settings.LogLevel
	}

	logLevel, ok := logging.ParseLevel(strings.ToLower(ll))
	if !ok {
		logging.Warn().Msgf("unknown log level: %s", ll)
	}
	logging.Logger = logging.Logger.Level(logLevel)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ignoreCase := config.IgnoreCaseEnabled(os.LookupEnv) ||
		mustGetBoolFlag(cmd, "ignore-case") ||
		settings.IgnoreCase

	// config.Build expects the program name in front, as in os.Args
	cfg, err := config.Build(append([]string{cmd.Root().Name()}, args...), ignoreCase)
	if err != nil {
		return &usageError{err: err}
	}
	logging.Debug().
		Str("query", cfg.Query).
		Str("path", cfg.FilePath).
		Bool("ignore_case", cfg.IgnoreCase).
		Msg("resolved configuration")

	runner := scan.Runner{
		Config: cfg,
		Stdin:  cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
	}

	start := time.Now()
	n, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	logging.Debug().Msgf("%d matching lines in %s", n, FormatDuration(time.Since(start)))
	return nil
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	if code := executeRoot(os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// executeRoot runs the root command and returns the process exit code.
// A failure is always written to stderr, whatever the log level.
func executeRoot(stderr io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if strings.Contains(err.Error(), "unknown flag") || strings.Contains(err.Error(), "unknown shorthand flag") {
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeUnknownFlag
	}
	logging.Report(stderr, err)
	return exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return exitCodeUsage
	}
	return exitCodeError
}

// FormatDuration rounds d to three significant digits for log output.
func FormatDuration(d time.Duration) string {
	for scale := 100 * time.Second; scale > 0; scale /= 10 {
		if scale <= d {
			return d.Round(scale / 100).String()
		}
	}
	return d.String()
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}
