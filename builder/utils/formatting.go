package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/Kush-Singh-26/newpost/builder/models"
)

// Date layouts accepted in front matter, most specific first.
var dateLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02",
}

// SortPosts orders posts newest first; equal dates fall back to title descending.
func SortPosts(posts []models.PostMetadata) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].DateObj.Equal(posts[j].DateObj) {
			return posts[i].Title > posts[j].Title
		}
		return posts[i].DateObj.After(posts[j].DateObj)
	})
}

// CountTags returns how many posts carry each tag, most used first.
func CountTags(posts []models.PostMetadata) []models.TagData {
	counts := make(map[string]int)
	for _, p := range posts {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}

	tags := make([]models.TagData, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, models.TagData{Name: name, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count == tags[j].Count {
			return tags[i].Name < tags[j].Name
		}
		return tags[i].Count > tags[j].Count
	})
	return tags
}

// ParseDate tries each known layout and reports whether one matched.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func GetString(m map[string]interface{}, k string) string {
	if v, ok := m[k]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// GetSlice reads a YAML sequence. Null items (a bare "  - ") are dropped.
func GetSlice(m map[string]interface{}, k string) []string {
	var res []string
	if v, ok := m[k]; ok {
		if l, ok := v.([]interface{}); ok {
			for _, i := range l {
				if i == nil {
					continue
				}
				res = append(res, fmt.Sprintf("%v", i))
			}
		}
	}
	return res
}

// GetTime reads a date value that the YAML decoder may have left as a string
// or already turned into a time.Time.
func GetTime(m map[string]interface{}, k string) (time.Time, bool) {
	switch v := m[k].(type) {
	case time.Time:
		return v, true
	case string:
		return ParseDate(v)
	}
	return time.Time{}, false
}
