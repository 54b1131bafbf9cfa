// Package label turns product records into printable compliance labels:
// a fixed-order list of text lines per product, laid out adaptively into
// fixed-size label slots on a sheet.
package label

import (
	"strings"

	"etiketka/binding"
	"etiketka/catalog"
	"etiketka/extract"
	"etiketka/layout"
)

// Line is one logical label line before word wrapping.
type Line struct {
	Font  string // layout.FontRegular or layout.FontBold
	Text  string
	Align string // "left" or "center"
	Care  bool   // care-instructions header line
	Price bool   // price line
}

// Content is the normalized label content of one product.
type Content struct {
	SKU   string
	Price string
	Lines []Line
}

// Templates are the configurable boilerplate line formats. Placeholders
// ${title}, ${sku} and ${price} are interpolated per product.
type Templates struct {
	Title    string
	Importer string
	Date     string
	Price    string
}

// DefaultTemplates reproduces the boilerplate printed on current labels.
func DefaultTemplates() Templates {
	return Templates{
		Title:    "EAC ${title}",
		Importer: "Импортер: ИП Анисимов Д.В., г. Брест, ул. Московская 247 кв. 68, УНП 291760554",
		Date:     "Дата изготовления:______202_г.",
		Price:    "ЦЕНА: ${price} руб",
	}
}

const (
	compositionPlaceholder  = "____________________"
	manufacturerPlaceholder = "____________________\n____________________\n____________________"
	careHeaderText          = "Рекомендации по уходу:"

	sizeCaption   = "Размер"
	heightCaption = "Рост"
)

// size-bearing attribute keys, checked in priority order
var sizeAttributeKeys = []string{"attribute_pa_razmer", "attribute_pa_size", "attribute_pa_rost"}

// sizeToken returns the product's size value: the first non-empty size
// attribute, else the age mentioned in the description, else "".
func sizeToken(p catalog.Product) string {
	for _, key := range sizeAttributeKeys {
		if v := p.Meta[key]; v != "" {
			return v
		}
	}
	if age, ok := extract.AgeAsSize(p.Content); ok {
		return age
	}
	return ""
}

// BuildContent assembles the ordered label lines for one product.
// Extraction misses resolve to blank placeholders, never errors.
func BuildContent(p catalog.Product, slugToLabel map[string]string, resolver *extract.MeasurementResolver, tpl Templates) Content {
	sku := p.SKU()
	price := p.Price()
	size := sizeToken(p)

	artAndSize := "Арт: " + sku
	if size != "" {
		caption := heightCaption
		if extract.IsSizeValue(size) {
			caption = sizeCaption
		}
		artAndSize += " " + caption + ": " + size
	}
	if attrs, ok := extract.FormatOtherAttributes(p.Meta, sizeAttributeKeys, slugToLabel); ok {
		artAndSize += ", " + attrs
	}

	composition, ok := extract.Composition(p.Content)
	if !ok {
		composition = compositionPlaceholder
	}
	// When no manufacturer was found the label carries blank fill-in
	// lines, each emitted as its own line.
	manufacturer, ok := extract.Manufacturer(p.Content)
	var manufacturerTail []string
	if !ok {
		parts := strings.Split(manufacturerPlaceholder, "\n")
		manufacturer = parts[0]
		manufacturerTail = parts[1:]
	}

	data := map[string]string{
		"title": p.DisplayTitle(),
		"sku":   sku,
		"price": price,
	}

	lines := []Line{
		{Font: layout.FontBold, Text: binding.Interpolate(tpl.Title, data), Align: "center"},
		{Font: layout.FontBold, Text: artAndSize, Align: "left"},
	}
	if measurements, ok := resolver.Resolve(p.Content, size); ok {
		lines = append(lines, Line{Font: layout.FontRegular, Text: measurements, Align: "left"})
	}
	lines = append(lines,
		Line{Font: layout.FontRegular, Text: "Состав: " + composition, Align: "left"},
		Line{Font: layout.FontRegular, Text: binding.Interpolate(tpl.Importer, data), Align: "left"},
		Line{Font: layout.FontRegular, Text: "Изготовитель: " + manufacturer, Align: "left"},
	)
	for _, blank := range manufacturerTail {
		lines = append(lines, Line{Font: layout.FontRegular, Text: blank, Align: "left"})
	}
	lines = append(lines,
		Line{Font: layout.FontRegular, Text: binding.Interpolate(tpl.Date, data), Align: "left"},
		Line{Font: layout.FontRegular, Text: careHeaderText, Align: "left", Care: true},
		Line{Font: layout.FontBold, Text: binding.Interpolate(tpl.Price, data), Align: "left", Price: true},
	)

	return Content{SKU: sku, Price: price, Lines: lines}
}
