package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths holds the configuration file paths found by discovery.
// Missing files are empty strings, not errors.
type ConfigPaths struct {
	// User is the user-level config (e.g. ~/.config/yeast2html/config.yaml).
	User string

	// Project is the nearest project config found by upward search.
	Project string

	// Explicit is a config path supplied via --config.
	Explicit string
}

// projectConfigFiles are the file names searched for in project
// directories, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".yeast2html.yml",
	".yeast2html.yaml",
	"yeast2html.yml",
	"yeast2html.yaml",
}

// userConfigFiles are the file names tried under the XDG config directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var userConfigFiles = []string{
	"config.yaml",
	"config.yml",
}

// vcsRootMarkers stop the upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
// the user config under $XDG_CONFIG_HOME/yeast2html, and a project
// config by searching upward from workDir until a VCS root.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{User: findUserConfig()}

	project, err := findProjectConfig(workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

func findUserConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range userConfigFiles {
		path := filepath.Join(configDir, "yeast2html", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findProjectConfig searches workDir and its ancestors for a project
// config file, stopping after the first directory that is a VCS root.
func findProjectConfig(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		for _, name := range projectConfigFiles {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
