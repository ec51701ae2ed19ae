package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmldoom/internal/config"
	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╻ ╻╺┳╸┏┳┓╻  ╺┳┓┏━┓┏━┓┏┳┓
  ┣━┫ ┃ ┃┃┃┃   ┃┃┃ ┃┃ ┃┃┃┃
  ╹ ╹ ╹ ╹ ╹┗━╸╺┻┛┗━┛┗━┛╹ ╹
`

// app holds state shared by the subcommands.
type app struct {
	configPath string
	cfg        *config.Config
}

func main() {
	cmd, err := newRootCmd().ExecuteC()
	if err != nil {
		errors.WriteError(os.Stderr, err, errorMode(cmd))
		os.Exit(1)
	}
}

// errorMode picks how a failed command reports its error: JSON next to JSON
// logs, one line for render whose stdout is usually piped.
func errorMode(cmd *cobra.Command) errors.Mode {
	switch {
	case logging.Opts.JSON:
		return errors.ModeJSON
	case cmd != nil && cmd.Name() == "render":
		return errors.ModeCompact
	default:
		return errors.ModeFull
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "htmldoom",
		Short: "Build HTML from Go values, YAML components and templates",
		Long: `htmldoom renders HTML from a directory of values.

Text, markup, asset and YAML component files are rendered into
pages that can be previewed with live reload or published to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(cmd.ErrOrStderr())
			return a.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to htmldoom.json (default: nearest in working directory or parents)")
	logging.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		renderCmd(a),
		valuesCmd(a),
		serveCmd(a),
		publishCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func (a *app) loadConfig() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}
	logging.Debug("config loaded", "path", a.cfg.Path())
	return nil
}

// printBanner prints the ASCII art banner.
func printBanner(cmd *cobra.Command) {
	fmt.Fprint(cmd.OutOrStdout(), banner)
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}
