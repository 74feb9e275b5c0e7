package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make builds a URL slug from a product or category name.
// "&" expands to "and" before slugging, so "Slim & Shape" and
// "Slim and Shape" produce the same slug.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
