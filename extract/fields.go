// Package extract recovers label fields from free-text product
// descriptions using anchored, case-insensitive patterns. Extraction is
// rule-based on purpose: a missing marker is a normal outcome reported via
// the ok return, never an error.
package extract

import (
	"regexp"
	"strings"
)

var (
	compositionPattern  = regexp.MustCompile(`(?i)Состав:([^\n\r]*)`)
	manufacturerPattern = regexp.MustCompile(`(?i)(?:Адрес изготовления|Адрес производителя|Адрес производитель):([^\n\r]*)`)
	agePattern          = regexp.MustCompile(`(?i)Возраст:?\s*([\d\-–\s]+лет?)`)
)

// Composition returns the text following the "Состав:" marker up to the end
// of the line, trimmed. ok is false when the marker is absent.
func Composition(text string) (string, bool) {
	return firstGroup(compositionPattern, text)
}

// Manufacturer returns the manufacturer address following any of the three
// accepted marker variants. The first marker found wins.
func Manufacturer(text string) (string, bool) {
	return firstGroup(manufacturerPattern, text)
}

// AgeAsSize recognises an age range such as "Возраст: 3-4 лет" and returns
// it as a size token. Used as a fallback when no size attribute exists.
func AgeAsSize(text string) (string, bool) {
	return firstGroup(agePattern, text)
}

func firstGroup(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
