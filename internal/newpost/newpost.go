// Package newpost creates Jekyll-style posts: a dated Markdown file in _posts
// with a YAML front-matter header and a placeholder body.
package newpost

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// PostsDir is where Jekyll looks for posts. It is never created here.
	PostsDir = "_posts"
	// Category is written as the only entry of the categories list.
	Category = "blog"
	// Placeholder is the body of every new post.
	Placeholder = "# Your content goes here."

	FilenameDateLayout    = "2006-01-02"
	FrontMatterDateLayout = "2006-01-02T15:04:05-0700"
)

// Usage is printed to stdout when no title is given.
const Usage = "Error: No title provided. Usage: newpost 'Your Post Title' tag1 tag2 ..."

// ErrMissingTitle is returned when the argument list is empty.
var ErrMissingTitle = errors.New("no title provided")

// Request is the title and tags read from the command line.
type Request struct {
	Title string
	Tags  []string
}

// ParseArgs builds a Request from process arguments (without the program name).
// The first argument is the title, everything after it is a tag.
func ParseArgs(args []string) (Request, error) {
	if len(args) < 1 {
		return Request{}, ErrMissingTitle
	}
	tags := make([]string, len(args)-1)
	copy(tags, args[1:])
	return Request{Title: args[0], Tags: tags}, nil
}

// Rendered is a post ready to be written.
type Rendered struct {
	Filename string
	Content  string
}

// Slug lower-cases the title and turns spaces into hyphens. Nothing else is
// replaced: slashes, punctuation and non-ASCII text are kept as given.
func Slug(title string) string {
	return cases.Lower(language.Und).String(strings.ReplaceAll(title, " ", "-"))
}

// Filename returns "{YYYY-MM-DD}-{slug}.md" for the local date of now.
func Filename(title string, now time.Time) string {
	return fmt.Sprintf("%s-%s.md", now.Format(FilenameDateLayout), Slug(title))
}

// FormatTags renders one "  - tag" line per tag. No tags yields "", which
// leaves the tags key in the front matter without items.
func FormatTags(tags []string) string {
	var b strings.Builder
	for _, tag := range tags {
		b.WriteString("  - ")
		b.WriteString(tag)
		b.WriteByte('\n')
	}
	return b.String()
}

// FrontMatter renders the whole file content. The title is quoted as-is,
// without escaping.
func FrontMatter(req Request, now time.Time) string {
	return fmt.Sprintf(`---
title: "%s"
date: %s
categories:
  - %s
tags:
%s---

%s
`, req.Title, now.Format(FrontMatterDateLayout), Category, FormatTags(req.Tags), Placeholder)
}

// Render reads the clock once for the filename and once for the date field.
func Render(req Request, now func() time.Time) Rendered {
	filename := Filename(req.Title, now())
	return Rendered{
		Filename: filename,
		Content:  FrontMatter(req, now()),
	}
}

// Creator writes rendered posts into Dir on Fs.
type Creator struct {
	Fs     afero.Fs
	Dir    string
	Now    func() time.Time
	Logger *slog.Logger
}

// NewCreator returns a Creator writing into PostsDir with the wall clock.
func NewCreator(fs afero.Fs) *Creator {
	return &Creator{
		Fs:     fs,
		Dir:    PostsDir,
		Now:    time.Now,
		Logger: slog.Default(),
	}
}

// Create writes the post and returns its path. An existing file with the same
// name is overwritten. The directory must already exist; I/O errors are
// returned unchanged.
func (c *Creator) Create(req Request) (string, error) {
	post := Render(req, c.Now)
	path := postPath(c.Dir, post.Filename)

	c.Logger.Debug("writing post", "path", path, "tags", len(req.Tags))
	if err := afero.WriteFile(c.Fs, path, []byte(post.Content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Run parses args, creates the post and reports the result on stdout.
// ErrMissingTitle is returned after the usage line has been printed.
func (c *Creator) Run(args []string, stdout io.Writer) error {
	req, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stdout, Usage)
		return err
	}

	path, err := c.Create(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Post created: %s\n", path)
	return nil
}

// postPath joins without cleaning so the filename reaches the filesystem
// exactly as derived from the title.
func postPath(dir, filename string) string {
	if dir == "" {
		return filename
	}
	return strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator) + filename
}
