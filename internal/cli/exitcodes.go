package cli

import (
	"errors"
	"io/fs"

	"github.com/yuhangwang/yamlreference/internal/configloader"
	"github.com/yuhangwang/yamlreference/pkg/config"
	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

// Exit codes for yeast2html, following sysexits conventions.
const (
	// ExitSuccess indicates successful conversion.
	ExitSuccess = 0

	// ExitUsage indicates invalid command-line usage, including more
	// than one input path or conflicting options.
	ExitUsage = 64

	// ExitData indicates a malformed YEAST stream: a bad record,
	// an unknown code, or broken begin/end nesting.
	ExitData = 65

	// ExitNoInput indicates the input or stylesheet file could not be read.
	ExitNoInput = 66

	// ExitConfig indicates a broken configuration file.
	ExitConfig = 78

	// ExitIO indicates the output could not be written.
	ExitIO = 74

	// ExitInternal indicates an unexpected internal error.
	ExitInternal = 70
)

// outputError marks failures writing the rendered document, so they
// map to ExitIO instead of ExitNoInput.
type outputError struct {
	err error
}

func (e *outputError) Error() string { return "write output: " + e.err.Error() }
func (e *outputError) Unwrap() error { return e.err }

// ExitCodeForError maps a terminal error to its exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *config.Error
	var fileErr *configloader.FileError
	var formatErr *yeast.FormatError
	var structErr *yeast.StructureError
	var outErr *outputError
	var pathErr *fs.PathError

	switch {
	case errors.As(err, &cfgErr):
		return ExitUsage
	case errors.As(err, &fileErr):
		return ExitConfig
	case errors.As(err, &formatErr), errors.As(err, &structErr):
		return ExitData
	case errors.As(err, &outErr):
		return ExitIO
	case errors.As(err, &pathErr):
		return ExitNoInput
	default:
		return ExitInternal
	}
}
