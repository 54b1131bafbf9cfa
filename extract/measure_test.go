package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *MeasurementResolver {
	return NewMeasurementResolver(nil, nil)
}

func TestResolveEmptySizeReturnsNothing(t *testing.T) {
	_, ok := newTestResolver().Resolve(sampleDescription, "")
	assert.False(t, ok)
}

func TestResolveNoBlockReturnsNothing(t *testing.T) {
	_, ok := newTestResolver().Resolve("Состав: хлопок", "98")
	assert.False(t, ok)
}

func TestResolveDiscardsSizeAliasBeforeComma(t *testing.T) {
	got, ok := newTestResolver().Resolve(sampleDescription, "98")
	require.True(t, ok)
	assert.Equal(t, "длина 38 см, рукав 30 см", got)
}

func TestResolveKeywordTableOrder(t *testing.T) {
	// Source order lists chest girth first; the output must follow the
	// keyword table order (length, sleeve, chest girth).
	text := "Замеры:\n110 (46, обхват груди 52 см, рукав до плеча 33 см, вся длина 45 см)"
	got, ok := newTestResolver().Resolve(text, "110")
	require.True(t, ok)
	assert.Equal(t, "длина 45 см, рукав 33 см, обхват груди 52 см", got)
}

func TestResolveLineWithoutKeywordsReturnsNothing(t *testing.T) {
	text := "Замеры:\n98 (обычный крой, без деталей)"
	_, ok := newTestResolver().Resolve(text, "98")
	assert.False(t, ok)
}

func TestResolveUnknownSizeReturnsNothing(t *testing.T) {
	_, ok := newTestResolver().Resolve(sampleDescription, "128")
	assert.False(t, ok)
}

func TestResolveBlockEndsAtBlankLine(t *testing.T) {
	text := "Замеры:\n98 (вся длина 40 см)\n\n104 (вся длина 44 см)"
	_, ok := newTestResolver().Resolve(text, "104")
	assert.False(t, ok, "lines after the blank line are outside the block")
}

func TestResolveCustomTable(t *testing.T) {
	table := []KeywordMapping{{Phrase: "ширина плеч", Label: "плечи"}}
	r := NewMeasurementResolver(table, nil)
	got, ok := r.Resolve("Замеры:\n98 (ширина плеч 27 см)", "98")
	require.True(t, ok)
	assert.Equal(t, "плечи 27 см", got)
}
