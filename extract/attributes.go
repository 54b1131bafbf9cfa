package extract

import (
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	attributePrefix   = "attribute_"
	attributePAPrefix = "attribute_pa_"
)

// attributeNames translates normalized attribute keys into the captions
// printed on the label. Unknown keys fall back to a capitalized form.
var attributeNames = map[string]string{
	"color":    "Цвет",
	"uzor":     "Узор",
	"patterns": "Узор",
	"material": "Материал",
	"type":     "Тип",
}

// FormatOtherAttributes renders the remaining attribute meta entries as
// "Name: Value" fragments joined by ", ". Keys in excludeKeys and blank
// values are skipped; slug values are resolved through slugToLabel and pass
// through verbatim when unresolved. Meta keys are visited in sorted order
// so the output is deterministic.
func FormatOtherAttributes(meta map[string]string, excludeKeys []string, slugToLabel map[string]string) (string, bool) {
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var fragments []string
	for _, key := range keys {
		value := meta[key]
		if !strings.HasPrefix(key, attributePrefix) || slices.Contains(excludeKeys, key) || strings.TrimSpace(value) == "" {
			continue
		}
		norm := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(key, attributePAPrefix), attributePrefix))
		name, ok := attributeNames[norm]
		if !ok {
			name = capitalize(norm)
		}
		slug := strings.TrimSpace(value)
		human, ok := slugToLabel[slug]
		if !ok {
			human = slug
		}
		fragments = append(fragments, name+": "+human)
	}

	if len(fragments) == 0 {
		return "", false
	}
	return strings.Join(fragments, ", "), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
