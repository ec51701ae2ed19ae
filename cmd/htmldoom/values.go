package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/internal/logging"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/loader"
)

func valuesCmd(a *app) *cobra.Command {
	var (
		get  string
		dump bool
	)

	cmd := &cobra.Command{
		Use:   "values [dir]",
		Short: "List or print the values of a directory",
		Long: `Load every file in a values directory and list the value paths.

Examples:
  htmldoom values
  htmldoom values site --get blog.post
  htmldoom values --dump`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.ValuesPath()
			if len(args) == 1 {
				dir = args[0]
			}
			values, err := a.loadValues(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case get != "":
				v, ok := values.Get(get)
				if !ok {
					return errors.New("E044").WithDetailf("%s has no value %q", dir, get)
				}
				if sub, ok := v.(loader.Values); ok {
					for _, p := range sub.Paths() {
						fmt.Fprintln(out, get+"."+p)
					}
					return nil
				}
				fmt.Fprintln(out, string(v.(element.RawText)))
			case dump:
				fmt.Fprintln(out, logging.Sdump(values))
			default:
				for _, p := range values.Paths() {
					fmt.Fprintln(out, p)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&get, "get", "g", "", "Print the value at a dotted path")
	cmd.Flags().BoolVar(&dump, "dump", false, "Pretty-print the whole values tree")

	return cmd
}

func (a *app) loadValues(dir string) (loader.Values, error) {
	return a.newLoader(dir, false).LoadValues(".")
}
