// defines the data structures shared by the post tools
package models

import "time"

// PostMetadata represents the front matter of a post file in _posts.
type PostMetadata struct {
	Path       string    `yaml:"path"`
	Title      string    `yaml:"title"`
	DateObj    time.Time `yaml:"date"`
	Categories []string  `yaml:"categories,omitempty"`
	Tags       []string  `yaml:"tags,omitempty"`
}

// TagData represents a tag and its frequency.
type TagData struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}
