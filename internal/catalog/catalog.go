// Package catalog reads existing posts back from a posts directory and
// prints them as text or YAML.
package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/Kush-Singh-26/newpost/builder/config"
	"github.com/Kush-Singh-26/newpost/builder/models"
	"github.com/Kush-Singh-26/newpost/builder/parser"
	"github.com/Kush-Singh-26/newpost/builder/utils"
)

type Catalog struct {
	fs     afero.Fs
	dir    string
	md     goldmark.Markdown
	logger *slog.Logger
}

func New(fs afero.Fs, dir string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		fs:     fs,
		dir:    dir,
		md:     parser.New(),
		logger: logger,
	}
}

// Load returns every post in the directory, newest first. Subdirectories are
// not searched and files whose front matter cannot be read are skipped.
func (c *Catalog) Load() ([]models.PostMetadata, error) {
	entries, err := afero.ReadDir(c.fs, c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts directory: %w", err)
	}

	posts := make([]models.PostMetadata, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())

		source, err := afero.ReadFile(c.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		post, err := parser.ParseFrontMatter(c.md, path, source)
		if err != nil {
			c.logger.Warn("Skipping post", "path", path, "error", err)
			continue
		}
		c.logger.Debug("Loaded post", "path", path, "tags", len(post.Tags))
		posts = append(posts, post)
	}

	utils.SortPosts(posts)
	return posts, nil
}

// Tags loads the posts and counts their tags.
func (c *Catalog) Tags() ([]models.TagData, error) {
	posts, err := c.Load()
	if err != nil {
		return nil, err
	}
	return utils.CountTags(posts), nil
}

// WriteList prints one line per post, or a YAML sequence.
func WriteList(w io.Writer, posts []models.PostMetadata, format string) error {
	if format == config.OutputYAML {
		return writeYAML(w, posts)
	}

	for _, p := range posts {
		date := "----------"
		if !p.DateObj.IsZero() {
			date = p.DateObj.Format("2006-01-02")
		}
		line := date + "  " + p.Title
		if len(p.Tags) > 0 {
			line += "  [" + strings.Join(p.Tags, ", ") + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTags prints "<tag>  <count>" lines, or a YAML sequence.
func WriteTags(w io.Writer, tags []models.TagData, format string) error {
	if format == config.OutputYAML {
		return writeYAML(w, tags)
	}

	for _, tag := range tags {
		if _, err := fmt.Fprintf(w, "%s  %d\n", tag.Name, tag.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
