package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify converts a human-readable name into a lowercase URL-safe slug.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// ProductSlug derives a unique product slug from the name and the creation
// timestamp, matching the catalog's uniqueness guarantee.
func ProductSlug(name string, createdAt time.Time) string {
	return Slugify(fmt.Sprintf("%s-%d", name, createdAt.UnixMilli()))
}
