// Package pathutil parses post IDs from URL paths and normalizes paths for
// metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// Any single segment counts as an id so that junk ids such as /posts/abc
// still collapse into one label.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/posts/[^/]+$`), Template: "/posts/:id"},
	{Pattern: regexp.MustCompile(`^/api/blogs/[^/]+$`), Template: "/api/blogs/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath converts dynamic URL paths to template form to keep metric
// label cardinality bounded.
//
//	NormalizePath("/posts/123")       // "/posts/:id"
//	NormalizePath("/posts/123/")      // "/posts/:id"
//	NormalizePath("/api/blogs/9?x=1") // "/api/blogs/:id"
//	NormalizePath("/posts")           // "/posts" (unchanged)
//	NormalizePath("/health")          // "/health" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
