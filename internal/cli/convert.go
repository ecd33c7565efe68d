package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yuhangwang/yamlreference/internal/configloader"
	"github.com/yuhangwang/yamlreference/internal/logging"
	"github.com/yuhangwang/yamlreference/pkg/config"
	"github.com/yuhangwang/yamlreference/pkg/fsutil"
	"github.com/yuhangwang/yamlreference/pkg/render"
	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

// convertFlags holds the root command's flag values. Only flags the
// user actually changed are merged over file and environment config.
type convertFlags struct {
	configPath string
	output     string
	stylesheet string
	link       bool
	treeTitle  string
	textTitle  string
}

func addConvertFlags(cmd *cobra.Command, flags *convertFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output path (default: standard output)")
	cmd.Flags().StringVarP(&flags.stylesheet, "stylesheet", "s", "",
		"CSS file to use instead of the built-in style")
	cmd.Flags().BoolVarP(&flags.link, "link", "l", false,
		"reference the stylesheet with <link> instead of inlining it")
	cmd.Flags().StringVar(&flags.treeTitle, "tree-title", "",
		fmt.Sprintf("title of the tree pane (default %q)", config.DefaultTreeTitle))
	cmd.Flags().StringVar(&flags.textTitle, "text-title", "",
		fmt.Sprintf("title of the text pane (default %q)", config.DefaultTextTitle))
}

// runConvert performs one full conversion: resolve configuration, read
// and parse the whole stream, render, then write. Parsing completes
// before the first output byte so a malformed stream never leaves a
// truncated document.
func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) > 1 {
		return &config.Error{Reason: fmt.Sprintf("expected at most one input path, got %d", len(args))}
	}

	cfg, err := resolveConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", logging.FieldConfig, cfg.String())

	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	doc, err := parseInput(input)
	if err != nil {
		return err
	}
	logger.Debug("stream parsed",
		logging.FieldInput, inputName(input),
		logging.FieldEntries, len(doc.Entries),
	)

	opts := render.Options{
		TreeTitle: cfg.TreeTitle,
		TextTitle: cfg.TextTitle,
	}
	if cfg.Stylesheet != "" {
		if cfg.LinkStylesheet {
			opts.StylesheetLink = cfg.Stylesheet
		} else {
			css, err := os.ReadFile(cfg.Stylesheet)
			if err != nil {
				return fmt.Errorf("read stylesheet: %w", err)
			}
			opts.Stylesheet = string(css)
			logger.Debug("stylesheet inlined", logging.FieldStylesheet, cfg.Stylesheet)
		}
	}

	page, err := render.Page(doc, opts)
	if err != nil {
		return err
	}

	return writeOutput(ctx, cfg.Output, page, logger)
}

// resolveConfig merges flag values over file and environment sources.
func resolveConfig(ctx context.Context, cmd *cobra.Command, flags *convertFlags) (*config.Config, error) {
	cliCfg := &config.Config{
		Output:     flags.output,
		Stylesheet: flags.stylesheet,
		TreeTitle:  flags.treeTitle,
		TextTitle:  flags.textTitle,
	}
	if cmd.Flags().Changed("link") {
		cliCfg.LinkStylesheet = flags.link
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: flags.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, err
	}

	if len(result.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration", "files", result.LoadedFrom)
	}

	return result.Config, nil
}

// parseInput opens the input source and parses it to completion.
func parseInput(path string) (*yeast.Document, error) {
	if path == "" {
		return yeast.Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return yeast.Parse(f)
}

// writeOutput delivers the assembled page: atomically to a file, or to
// stdout with a warning when stdout is a terminal.
func writeOutput(ctx context.Context, path string, page []byte, logger *log.Logger) error {
	if path == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Warn("writing HTML to a terminal; use --output or redirect")
		}
		if _, err := os.Stdout.Write(page); err != nil {
			return &outputError{err: err}
		}
		return nil
	}

	if err := fsutil.WriteAtomic(ctx, path, page, 0); err != nil {
		return &outputError{err: err}
	}
	logger.Debug("document written",
		logging.FieldOutput, path,
		logging.FieldBytes, len(page),
	)
	return nil
}

func inputName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
