// handles command-line settings for the post catalog
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Output formats understood by the catalog commands.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

type Config struct {
	PostsDir string
	Output   string
	Verbose  bool
}

// Default returns the settings used when no flags are given.
func Default() *Config {
	return &Config{
		PostsDir: "_posts",
		Output:   OutputText,
	}
}

// Validate normalises the values read from flags.
func (c *Config) Validate() error {
	c.PostsDir = strings.TrimSpace(c.PostsDir)
	if c.PostsDir == "" {
		c.PostsDir = "_posts"
	}
	c.PostsDir = filepath.Clean(c.PostsDir)

	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case "":
		c.Output = OutputText
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputYAML)
	}
	return nil
}
