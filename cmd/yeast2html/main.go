// Package main is the entry point for the yeast2html CLI.
package main

import (
	"fmt"
	"os"

	"github.com/yuhangwang/yamlreference/internal/cli"
	"github.com/yuhangwang/yamlreference/internal/logging"
	"github.com/yuhangwang/yamlreference/internal/ui/pretty"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("conversion failed", logging.FieldError, err)

		code := cli.ExitCodeForError(err)
		if code == cli.ExitUsage {
			styles := pretty.NewStyles(pretty.IsColorEnabled("auto", os.Stderr))
			fmt.Fprintln(os.Stderr, styles.Dim.Render(`run "yeast2html --help" for usage`))
		}
		return code
	}

	return cli.ExitSuccess
}
