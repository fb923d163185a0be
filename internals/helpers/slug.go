package helper

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9\x{0600}-\x{06FF}]+`)
	slugDashRe    = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug lowercases and dash-joins a name. Arabic letters are kept so
// Arabic survey links stay readable.
func GenerateSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidRe.ReplaceAllString(s, "-")
	s = slugDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
