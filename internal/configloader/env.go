package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yuhangwang/yamlreference/pkg/config"
)

// envVarPrefix is the prefix for all yeast2html environment variables.
const envVarPrefix = "YEAST2HTML_"

// LoadFromEnv applies environment variable overrides to cfg.
// Recognized variables: YEAST2HTML_OUTPUT, YEAST2HTML_STYLESHEET,
// YEAST2HTML_LINK_STYLESHEET, YEAST2HTML_TREE_TITLE,
// YEAST2HTML_TEXT_TITLE.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(envVarPrefix + "STYLESHEET"); v != "" {
		cfg.Stylesheet = v
	}
	if v := os.Getenv(envVarPrefix + "LINK_STYLESHEET"); v != "" {
		link, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %sLINK_STYLESHEET: %w", envVarPrefix, err)
		}
		cfg.LinkStylesheet = link
	}
	if v := os.Getenv(envVarPrefix + "TREE_TITLE"); v != "" {
		cfg.TreeTitle = v
	}
	if v := os.Getenv(envVarPrefix + "TEXT_TITLE"); v != "" {
		cfg.TextTitle = v
	}

	return nil
}
