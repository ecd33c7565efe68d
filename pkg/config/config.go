// Package config defines the configuration types for yeast2html.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yuhangwang/yamlreference/pkg/render"
)

// Config is the resolved configuration for one conversion run.
type Config struct {
	// Output is the destination path. Empty means standard output.
	Output string `yaml:"output"`

	// Stylesheet is the path of a CSS file to use instead of the
	// built-in style. Empty means the built-in style.
	Stylesheet string `yaml:"stylesheet"`

	// LinkStylesheet emits a <link> reference to Stylesheet instead of
	// inlining its contents. Requires Stylesheet to be set.
	LinkStylesheet bool `yaml:"link_stylesheet"`

	// TreeTitle heads the syntax tree pane.
	TreeTitle string `yaml:"tree_title"`

	// TextTitle heads the reconstructed text pane.
	TextTitle string `yaml:"text_title"`
}

// Default pane titles, shared with the renderer so the two layers
// cannot drift apart.
const (
	DefaultTreeTitle = render.DefaultTreeTitle
	DefaultTextTitle = render.DefaultTextTitle
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TreeTitle: DefaultTreeTitle,
		TextTitle: DefaultTextTitle,
	}
}

// Error reports an invalid or conflicting option combination.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "configuration: " + e.Reason
}

// Validate checks option combinations that no single flag can catch.
func (c *Config) Validate() error {
	if c.LinkStylesheet && c.Stylesheet == "" {
		return &Error{Reason: "link_stylesheet requires a stylesheet path"}
	}
	return nil
}

// Merge overlays non-zero fields of other onto c. Used by the loader to
// apply precedence between configuration sources.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Stylesheet != "" {
		c.Stylesheet = other.Stylesheet
	}
	if other.LinkStylesheet {
		c.LinkStylesheet = true
	}
	if other.TreeTitle != "" {
		c.TreeTitle = other.TreeTitle
	}
	if other.TextTitle != "" {
		c.TextTitle = other.TextTitle
	}
}

// String renders the configuration for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("output=%q stylesheet=%q link=%t tree_title=%q text_title=%q",
		c.Output, c.Stylesheet, c.LinkStylesheet, c.TreeTitle, c.TextTitle)
}
