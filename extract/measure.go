package extract

import (
	"log/slog"
	"regexp"
	"strings"
)

var measurementsBlockPattern = regexp.MustCompile(`(?is)Замеры:(.*?)(?:\n\n|$)`)

// KeywordMapping ties a raw measurement phrase found in descriptions to the
// short canonical label printed on the tag. Several phrases collapse onto
// the same label.
type KeywordMapping struct {
	Phrase string
	Label  string
}

// DefaultKeywordTable returns the phrase table observed over real
// descriptions. The order is significant: output fragments follow table
// order, not source order. Callers may supply their own table to the
// resolver; this enumeration is data, not a fixed rule.
func DefaultKeywordTable() []KeywordMapping {
	return []KeywordMapping{
		{"длина от плеча", "длина"},
		{"длина кофты от плеча", "длина"},
		{"вся длина от плеча", "длина"},
		{"вся длина", "длина"},
		{"рукав до горловины", "рукав"},
		{"рукав до плеча", "рукав"},
		{"рукав до капюшона", "рукав"},
		{"обхват груди", "обхват груди"},
		{"шаговой", "шаговой"},
		{"шаговой штанишек", "шаговой"},
		{"обхват талии", "обхват талии"},
	}
}

// MeasurementResolver locates the measurement line matching a size token
// and extracts the sub-measurements relevant to the garment type.
type MeasurementResolver struct {
	table    []KeywordMapping
	patterns []*regexp.Regexp
	log      *slog.Logger
}

// NewMeasurementResolver builds a resolver over the given keyword table.
// A nil table uses DefaultKeywordTable; a nil logger discards the trace.
func NewMeasurementResolver(table []KeywordMapping, log *slog.Logger) *MeasurementResolver {
	if table == nil {
		table = DefaultKeywordTable()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	patterns := make([]*regexp.Regexp, len(table))
	for i, kw := range table {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw.Phrase) + `\s*(\d+\s*см)`)
	}
	return &MeasurementResolver{table: table, patterns: patterns, log: log}
}

// Resolve returns the formatted measurement string for targetSize, or
// ok=false when the description has no usable measurements. Every attempt
// is traced through the logger so mis-tagged descriptions can be corrected;
// the trace never affects the returned value.
func (r *MeasurementResolver) Resolve(text, targetSize string) (string, bool) {
	if targetSize == "" {
		r.log.Debug("measurements skipped: no target size")
		return "", false
	}

	block := measurementsBlockPattern.FindStringSubmatch(text)
	if block == nil {
		r.log.Debug("measurements skipped: no block found", "size", targetSize)
		return "", false
	}

	linePattern := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(targetSize) + `\s*\((.*?)\)`)
	for _, line := range strings.Split(block[1], "\n") {
		r.log.Debug("measurements: scanning line", "line", line)
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		inner := strings.TrimSpace(m[1])
		// Everything before the first comma is a secondary size alias.
		if idx := strings.Index(inner, ","); idx >= 0 {
			inner = strings.TrimSpace(inner[idx+1:])
		}
		var parts []string
		for i, kw := range r.table {
			if km := r.patterns[i].FindStringSubmatch(inner); km != nil {
				parts = append(parts, kw.Label+" "+strings.TrimSpace(km[1]))
			}
		}
		result := strings.Join(parts, ", ")
		r.log.Debug("measurements: line matched", "size", targetSize, "result", result)
		return result, len(parts) > 0
	}

	r.log.Debug("measurements skipped: no line for size", "size", targetSize)
	return "", false
}
