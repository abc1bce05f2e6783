package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domattr/pkg/attrs"
	"github.com/vango-dev/domattr/pkg/dom"
	"github.com/vango-dev/domattr/pkg/services"
)

type applyOptions struct {
	html      string
	attrsFile string
	svg       bool
	pretty    bool
	configDir string
}

func applyCmd() *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply an attribute map to an element",
		Long: `Apply a JSON attribute map to a single HTML element and print the result.

The attribute map is a JSON object read from --attrs (use - for stdin).
Key order is preserved, so $-bindings merge in file order. Entries of
decl:services may be event or hook descriptors:

  {"kind": "event", "event": "click", "handler": "./app.js#onClick"}
  {"kind": "hook", "name": "Sortable", "config": {"group": "a"}}

The element markup is printed first, followed by mutated=<bool>.

Examples:
  domattr apply --html '<input value="a">' --attrs attrs.json
  echo '{"class":["a","b"]}' | domattr apply --html '<div></div>' --attrs -
  domattr apply --html '<circle></circle>' --attrs a.json --svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.html, "html", "", "Element markup (exactly one root element)")
	cmd.Flags().StringVarP(&opts.attrsFile, "attrs", "a", "", "JSON attribute map file, or - for stdin")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "Treat the element as SVG")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the printed markup")
	cmd.Flags().StringVarP(&opts.configDir, "config", "c", "", "Directory containing domattr.json (default: working directory)")
	_ = cmd.MarkFlagRequired("html")
	_ = cmd.MarkFlagRequired("attrs")

	return cmd
}

func runApply(ctx context.Context, opts applyOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}
	if opts.pretty {
		cfg.Render.Pretty = true
	}
	rt, err := newRuntime(cfg, stderr)
	if err != nil {
		return err
	}

	m, err := readAttrs(opts.attrsFile, stdin)
	if err != nil {
		return err
	}

	el, err := dom.Parse(opts.html)
	if err != nil {
		return err
	}
	isSVG := opts.svg || el.Namespace() == dom.SVGNamespace

	mutated, err := rt.applicator.ApplyContext(ctx, el, services.Resolve(m), isSVG)
	if err != nil {
		return err
	}

	out, err := rt.renderer.RenderToString(el)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, out)
	if !cfg.Render.Pretty {
		fmt.Fprintln(stdout)
	}
	fmt.Fprintf(stdout, "mutated=%t\n", mutated)
	return nil
}

func readAttrs(path string, stdin io.Reader) (attrs.Map, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read attrs: %w", err)
	}

	var m attrs.Map
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parse attrs %s: %w", path, err)
	}
	return m, nil
}
