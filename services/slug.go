package services

import (
	"fmt"
	"strings"
)

const MaxSlugLength = 280

// Slugify turns a human-readable title into a URL-safe slug: ASCII
// lowercase alphanumerics with single hyphens, truncated to MaxSlugLength.
// Non-ASCII characters are dropped.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > MaxSlugLength {
		slug = strings.Trim(slug[:MaxSlugLength], "-")
	}
	return slug
}

// slugVariant appends a numeric suffix for collision disambiguation,
// shortening the base so the result still fits MaxSlugLength.
func slugVariant(base string, n int) string {
	suffix := fmt.Sprintf("-%d", n)
	if len(base)+len(suffix) > MaxSlugLength {
		base = strings.Trim(base[:MaxSlugLength-len(suffix)], "-")
	}
	return base + suffix
}
