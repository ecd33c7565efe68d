// Package configloader resolves the yeast2html configuration from its
// sources: defaults, user config, project config, an explicit --config
// file, environment variables, and CLI flags, in rising precedence.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yuhangwang/yamlreference/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory the project config search starts
	// from. Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a config file given via --config. When set,
	// project discovery is skipped.
	ExplicitPath string

	// IgnoreUserConfig skips the user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// CLIConfig carries values set via flags; highest precedence.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration plus provenance.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files actually loaded, in merge order.
	LoadedFrom []string
}

// Load resolves the final configuration. Precedence, highest first:
// CLI flags, environment, explicit config file, project config, user
// config, defaults.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{Config: config.Default()}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Explicit = opts.ExplicitPath

	sources := make([]string, 0, 2)
	if !opts.IgnoreUserConfig && paths.User != "" {
		sources = append(sources, paths.User)
	}
	switch {
	case paths.Explicit != "":
		sources = append(sources, paths.Explicit)
	case paths.Project != "":
		sources = append(sources, paths.Project)
	}

	for _, path := range sources {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		result.Config.Merge(fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	result.Config.Merge(opts.CLIConfig)

	if err := result.Config.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// FileError reports an unreadable or malformed configuration file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// loadFile reads and decodes one YAML config file. Unknown keys are
// rejected so typos surface instead of being silently dropped.
func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	var cfg config.Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, &FileError{Path: path, Err: err}
	}

	return &cfg, nil
}
