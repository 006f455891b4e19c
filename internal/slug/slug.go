// Package slug derives URL-safe post identifiers from human-entered titles.
package slug

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptySlug is returned when nothing of the title survives normalization,
// e.g. a title made entirely of punctuation.
var ErrEmptySlug = errors.New("title produces an empty slug")

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Derive maps a title to its slug: lowercase, every run of characters outside
// [a-z0-9] collapsed to a single hyphen, leading and trailing hyphens
// stripped. Characters with no ASCII-lowercase mapping are discarded, not
// transliterated. Deterministic and pure.
func Derive(title string) (string, error) {
	s := strings.ToLower(title)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "", ErrEmptySlug
	}
	return s, nil
}
