package binding

import "regexp"

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces ${field} placeholders in text with values from data.
// Unknown fields keep the original placeholder so a mistyped template stays
// visible on the printed label instead of silently vanishing.
func Interpolate(text string, data map[string]string) string {
	if len(data) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		if val, ok := data[groups[1]]; ok {
			return val
		}
		return match
	})
}

// Fields reports the placeholder names referenced by a template, in order
// of appearance. Used by config validation to reject unknown fields early.
func Fields(text string) []string {
	var names []string
	for _, m := range exprPattern.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}
