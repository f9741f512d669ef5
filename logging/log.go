package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. Everything goes to stderr so that
// stdout only ever carries matched lines.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(consoleWriter(os.Stderr)).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// consoleWriter only colours output going to a terminal.
func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: noColor}
}

// Report writes err to w at error level. It ignores the level of Logger so
// a run that fails never exits silently.
func Report(w io.Writer, err error) {
	l := zerolog.New(consoleWriter(w)).With().Timestamp().Logger()
	l.Error().Msg(err.Error())
}

// ParseLevel maps a --log-level value onto a zerolog level.
func ParseLevel(s string) (zerolog.Level, bool) {
	switch s {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "err", "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

func With() zerolog.Context {
	return Logger.With()
}

func Trace() *zerolog.Event {
	return Logger.Trace()
}

func Debug() *zerolog.Event {
	return Logger.Debug()
}

func Info() *zerolog.Event {
	return Logger.Info()
}

func Warn() *zerolog.Event {
	return Logger.Warn()
}

func Error() *zerolog.Event {
	return Logger.Error()
}

func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
