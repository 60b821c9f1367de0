package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	slugFormat = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexRGB     = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Slugify lowercases s, collapses every run of non-alphanumerics to a single
// dash and trims dashes from both ends.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsSlug reports whether s is already in Slugify form.
func IsSlug(s string) bool {
	return slugFormat.MatchString(s)
}

// IsHexRGB accepts #RRGGBB only; the short and alpha forms are rejected.
func IsHexRGB(s string) bool {
	return hexRGB.MatchString(s)
}
