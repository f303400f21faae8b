package ai

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeRecipe strips markup from pasted recipe text and leaves plain text.
func SanitizeRecipe(text string) string {
	// StrictPolicy escapes what it keeps; undo that so "&" stays "&".
	clean := html.UnescapeString(strictPolicy.Sanitize(text))
	return strings.TrimSpace(clean)
}
