// Configures the markdown parser used to read post front matter
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/Kush-Singh-26/newpost/builder/models"
	"github.com/Kush-Singh-26/newpost/builder/utils"
)

// ErrNoFrontMatter is returned for files without a leading --- block.
var ErrNoFrontMatter = errors.New("no front matter")

// New creates a Goldmark markdown parser that collects YAML front matter.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)
}

// ParseFrontMatter reads the metadata block of a post. When the date field is
// missing or unreadable the YYYY-MM-DD prefix of the file name is used.
func ParseFrontMatter(md goldmark.Markdown, path string, source []byte) (models.PostMetadata, error) {
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	metaData, err := meta.TryGet(ctx)
	if err != nil {
		return models.PostMetadata{}, fmt.Errorf("front matter of %s: %w", path, err)
	}
	if len(metaData) == 0 {
		return models.PostMetadata{}, fmt.Errorf("%s: %w", path, ErrNoFrontMatter)
	}

	dateObj, ok := utils.GetTime(metaData, "date")
	if !ok {
		dateObj = DateFromFilename(path)
	}

	return models.PostMetadata{
		Path:       path,
		Title:      utils.GetString(metaData, "title"),
		DateObj:    dateObj,
		Categories: utils.GetSlice(metaData, "categories"),
		Tags:       utils.GetSlice(metaData, "tags"),
	}, nil
}

// DateFromFilename parses the Jekyll date prefix of a post file name.
// It returns the zero time when the name has no such prefix.
func DateFromFilename(path string) time.Time {
	base := filepath.Base(path)
	if len(base) < len("2006-01-02") {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", base[:len("2006-01-02")])
	if err != nil {
		return time.Time{}
	}
	return t
}
