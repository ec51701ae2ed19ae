// Package logging configures the process-wide slog logger from CLI flags.
package logging

import (
	"io"
	"log/slog"

	"github.com/kortschak/utter"
	"github.com/spf13/pflag"
)

var Opts struct {
	Verbose     bool
	VeryVerbose bool
	JSON        bool
}

// AddFlags registers -v/--verbose, --vv and --log-json on flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&Opts.Verbose, "verbose", "v", false, "Set logging level more verbose to include info level logs")
	flags.BoolVar(&Opts.VeryVerbose, "vv", false, "Set logging level more verbose to include debug level logs")
	flags.BoolVar(&Opts.JSON, "log-json", false, "Emit logs as JSON")
}

// Level returns the level selected by Opts. Warn is the default.
func Level() slog.Level {
	switch {
	case Opts.VeryVerbose:
		return slog.LevelDebug
	case Opts.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Setup installs a logger writing to w at Level() as the slog default and
// returns it.
func Setup(w io.Writer) *slog.Logger {
	logLevel := new(slog.LevelVar)
	logLevel.Set(Level())

	opts := &slog.HandlerOptions{Level: logLevel}
	var h slog.Handler
	if Opts.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

var (
	Default = slog.Default
	Debug   = slog.Debug
	Info    = slog.Info
	Warn    = slog.Warn
	Error   = slog.Error
	With    = slog.With
)

// Sdump pretty-prints v.
func Sdump(v any) string {
	return utter.Sdump(v)
}
