package parser

import (
	"fmt"
	"regexp"
)

// urlPattern matches http(s) URLs: scheme, domain labels, a TLD of at least
// two letters, an optional port and an optional path/query/fragment tail.
var urlPattern = regexp.MustCompile(`^https?://(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}(?::\d{1,5})?(?:[/?#]\S*)?$`)

// IsURL reports whether value is a well-formed http(s) URL.
func IsURL(value string) bool {
	return urlPattern.MatchString(value)
}

// ValidateURL returns an InvalidEmbed error naming attribute when value is
// not a well-formed URL.
func ValidateURL(attribute, value string) error {
	if IsURL(value) {
		return nil
	}
	return NewInvalidEmbedError(attribute, fmt.Sprintf("%s is not a valid URL: %q", attribute, value))
}
