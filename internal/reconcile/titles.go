package reconcile

import (
	"regexp"
	"strings"
)

// yearsAndPunct matches standalone 4-digit runs and punctuation.
var yearsAndPunct = regexp.MustCompile(`\b\d{4}\b|[^\w\s]`)

// CleanTitle strips release years and punctuation so titles from the
// watch-history service and the library managers compare directly.
// Comparison stays case sensitive.
func CleanTitle(title string) string {
	return strings.TrimSpace(yearsAndPunct.ReplaceAllString(title, ""))
}
