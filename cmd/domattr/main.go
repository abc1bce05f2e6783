package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domattr/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "domattr",
		Short: "Reconcile attribute maps onto HTML elements",
		Long: `domattr applies attribute maps to HTML elements.

Class and style values are stringified, $-prefixed keys are merged into
bind:<slug> attributes, decl:services entries are attached, and form
control values are written to both the attribute and the live property.

Run it once from the command line or as an HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || os.Getenv("NO_COLOR") != "" {
				errors.DisableColors()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	cmd.AddCommand(
		applyCmd(),
		serveCmd(),
		versionCmd(),
	)
	return cmd
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
