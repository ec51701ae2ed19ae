package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmldoom/internal/errors"
	"github.com/vango-dev/htmldoom/internal/logging"
	"github.com/vango-dev/htmldoom/pkg/element"
	"github.com/vango-dev/htmldoom/pkg/loader"
	"github.com/vango-dev/htmldoom/pkg/render"
)

func renderCmd(a *app) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "render <file> [directive]",
		Short: "Render a single file",
		Long: `Render a text, markup, asset or YAML component file to stdout.

For YAML files the optional directive is a dot-separated path to a
component inside the document.

Examples:
  htmldoom render components.yml
  htmldoom render components.yml nav.main
  htmldoom render page.html --static`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			directive := ""
			if len(args) == 2 {
				directive = args[1]
			}
			html, err := a.renderFile(args[0], directive, static)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "Double braces so the output survives template compilation")

	return cmd
}

func (a *app) renderer() *render.Renderer {
	return render.New(a.cfg.RenderConfig())
}

func (a *app) newLoader(dir string, static bool) *loader.Loader {
	l := loader.New(os.DirFS(dir))
	l.Renderer = a.renderer()
	l.Static = static || a.cfg.Values.Static
	l.Logger = logging.Default()
	return l
}

func (a *app) renderFile(name, directive string, static bool) (string, error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	l := a.newLoader(dir, static)

	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	var (
		el  element.Element
		err error
	)
	switch ext {
	case "yml", "yaml":
		el, err = l.LoadYAML(base, directive)
	default:
		if directive != "" {
			return "", errors.New("E044").
				WithDetailf("%s: directives apply to YAML files only", name)
		}
		fn, ok := loader.DefaultRenderers()[ext]
		if !ok {
			return "", errors.New("E041").WithDetailf("%s: no renderer for %q", name, ext)
		}
		el, err = fn(l, base)
	}
	if err != nil {
		return "", err
	}
	return l.Renderer.Render(el)
}
