// Package cli provides the Cobra command structure for yeast2html.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yuhangwang/yamlreference/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root yeast2html command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string
	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "yeast2html [input]",
		Short: "Render a YEAST token stream as correlated HTML views",
		Long: `yeast2html converts a YEAST token stream (one byte-coded record per
line, as produced by the YAML reference tokenizer) into a single HTML
document with two correlated panes: a collapsible syntax tree and the
reconstructed linear text. Clicking an element in either pane
highlights its counterpart in the other.

With no input path the stream is read from standard input. The result
is written to standard output unless --output is given.`,
		Example: `  yeast2html tokens.yeast             # render to stdout
  yeast2html -o out.html tokens.yeast # render to a file
  yaml2yeast doc.yaml | yeast2html    # read from stdin
  yeast2html -s style.css -l in.yeast # reference the stylesheet`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize help output: auto, always, never")

	addConvertFlags(rootCmd, flags)

	rootCmd.AddCommand(newVersionCommand(info))
	rootCmd.AddCommand(newManCommand())

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
