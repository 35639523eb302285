package parser

import (
	"errors"
	"testing"
	"time"
)

func TestParseFrontMatter(t *testing.T) {
	md := New()

	tests := []struct {
		name     string
		path     string
		source   string
		title    string
		date     time.Time
		tags     []string
		category []string
	}{
		{
			name: "post with tags",
			path: "_posts/2024-03-15-my-first-post.md",
			source: `---
title: "My First Post"
date: 2024-03-15T10:20:30+0100
categories:
  - blog
tags:
  - jekyll
  - howto
---

# Your content goes here.
`,
			title:    "My First Post",
			date:     time.Date(2024, 3, 15, 9, 20, 30, 0, time.UTC),
			tags:     []string{"jekyll", "howto"},
			category: []string{"blog"},
		},
		{
			name: "dangling tags key",
			path: "_posts/2024-03-15-solo.md",
			source: `---
title: "Solo"
date: 2024-03-15T10:20:30+0100
categories:
  - blog
tags:
---

# Your content goes here.
`,
			title:    "Solo",
			date:     time.Date(2024, 3, 15, 9, 20, 30, 0, time.UTC),
			tags:     nil,
			category: []string{"blog"},
		},
		{
			name: "empty tag item",
			path: "_posts/2024-03-15-empty-item.md",
			source: `---
title: "Empty Item"
date: 2024-03-15T10:20:30+0100
tags:
  -
---
`,
			title: "Empty Item",
			date:  time.Date(2024, 3, 15, 9, 20, 30, 0, time.UTC),
			tags:  nil,
		},
		{
			name: "date taken from file name",
			path: "_posts/2023-12-01-no-date.md",
			source: `---
title: "No Date"
---
`,
			title: "No Date",
			date:  time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := ParseFrontMatter(md, tt.path, []byte(tt.source))
			if err != nil {
				t.Fatalf("ParseFrontMatter() error = %v", err)
			}
			if post.Path != tt.path {
				t.Errorf("Path = %q, want %q", post.Path, tt.path)
			}
			if post.Title != tt.title {
				t.Errorf("Title = %q, want %q", post.Title, tt.title)
			}
			if !post.DateObj.Equal(tt.date) {
				t.Errorf("DateObj = %v, want %v", post.DateObj, tt.date)
			}
			if len(post.Tags) != len(tt.tags) {
				t.Fatalf("Tags = %v, want %v", post.Tags, tt.tags)
			}
			for i := range tt.tags {
				if post.Tags[i] != tt.tags[i] {
					t.Errorf("Tags[%d] = %q, want %q", i, post.Tags[i], tt.tags[i])
				}
			}
			if len(post.Categories) != len(tt.category) {
				t.Errorf("Categories = %v, want %v", post.Categories, tt.category)
			}
		})
	}
}

func TestParseFrontMatter_NoFrontMatter(t *testing.T) {
	_, err := ParseFrontMatter(New(), "_posts/plain.md", []byte("# Just a heading\n"))
	if !errors.Is(err, ErrNoFrontMatter) {
		t.Errorf("error = %v, want ErrNoFrontMatter", err)
	}
}

func TestParseFrontMatter_InvalidYAML(t *testing.T) {
	source := "---\ntitle: \"Say \"hi\"\"\n---\n"
	if _, err := ParseFrontMatter(New(), "_posts/2024-01-01-say-hi.md", []byte(source)); err == nil {
		t.Error("expected an error for an unescaped quote in the title")
	}
}

func TestDateFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want time.Time
	}{
		{"_posts/2024-03-15-my-first-post.md", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15.md", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"_posts/about.md", time.Time{}},
		{"x.md", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DateFromFilename(tt.path); !got.Equal(tt.want) {
				t.Errorf("DateFromFilename(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
