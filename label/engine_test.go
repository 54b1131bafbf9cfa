package label

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etiketka/catalog"
	"etiketka/layout"
)

// stubTypesetter emits one line per input with a fixed per-rune width,
// wide enough that nothing wraps.
type stubTypesetter struct{}

func (stubTypesetter) LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]layout.TextLine, error) {
	return []layout.TextLine{{Content: content, Width: 0.5 * float64(len([]rune(content))), Height: fontSize}}, nil
}

func newTestEngine(t *testing.T, geo Geometry, opts Options) *Engine {
	t.Helper()
	if opts.Typesetter == nil {
		opts.Typesetter = stubTypesetter{}
	}
	e, err := NewEngine(geo, opts)
	require.NoError(t, err)
	return e
}

func testProduct(sku string) catalog.Product {
	return catalog.Product{
		ID:    7,
		Title: "Джемпер детский",
		Meta: map[string]string{
			catalog.MetaSKU:   sku,
			catalog.MetaPrice: "25.50",
		},
	}
}

func TestNewEngineRequiresTypesetter(t *testing.T) {
	_, err := NewEngine(DefaultGeometry(), Options{})
	assert.Error(t, err)
}

func TestPagerSlots(t *testing.T) {
	pg := newPager(3)
	var pages, positions []int
	for i := 0; i < 7; i++ {
		st := pg.next()
		pages = append(pages, st.Page)
		positions = append(positions, st.PosInPage)
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2}, pages)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, positions)
}

func TestGeneratePagination(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	products := make([]catalog.Product, 7)
	for i := range products {
		products[i] = testProduct("SKU-1")
	}

	res, err := e.Generate(products, nil)
	require.NoError(t, err)
	require.Len(t, res.Pages, 3)
	assert.Len(t, res.Pages[0].Barcodes, 3)
	assert.Len(t, res.Pages[1].Barcodes, 3)
	assert.Len(t, res.Pages[2].Barcodes, 1, "trailing partial page keeps its single label")
	for _, p := range res.Pages {
		assert.Equal(t, 120.0, p.Width)
		assert.Equal(t, 70.0, p.Height)
	}
}

func TestGenerateExactPageFill(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	products := make([]catalog.Product, 6)
	for i := range products {
		products[i] = testProduct("SKU-1")
	}

	res, err := e.Generate(products, nil)
	require.NoError(t, err)
	assert.Len(t, res.Pages, 2, "a full final page must not spill an empty page")
}

func TestSlotHorizontalOffsets(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	products := make([]catalog.Product, 3)
	for i := range products {
		products[i] = testProduct("SKU-1")
	}

	res, err := e.Generate(products, nil)
	require.NoError(t, err)
	require.Len(t, res.Pages, 1)
	bcs := res.Pages[0].Barcodes
	require.Len(t, bcs, 3)
	assert.InDelta(t, 2.0, bcs[0].X, 1e-9)
	assert.InDelta(t, 42.0, bcs[1].X, 1e-9)
	assert.InDelta(t, 82.0, bcs[2].X, 1e-9)
}

func TestLineHeightClampedToMax(t *testing.T) {
	// Ten unwrapped lines in 60mm of text space want 6mm each.
	e := newTestEngine(t, DefaultGeometry(), Options{})
	plan, err := e.planSlot(BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl), slot{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, plan.LineHeight)
}

func TestLineHeightClampedToMin(t *testing.T) {
	geo := DefaultGeometry()
	geo.PageHeight = 12
	e := newTestEngine(t, geo, Options{})
	plan, err := e.planSlot(BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl), slot{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, plan.LineHeight)
}

func TestBarcodeStretchedToUsableWidth(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	plan, err := e.planSlot(BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl), slot{})
	require.NoError(t, err)
	require.NotNil(t, plan.Barcode)
	assert.Equal(t, "SKU-1", plan.Barcode.Value)
	assert.InDelta(t, 36.0, plan.Barcode.RenderedWidth(), 1e-9)
	assert.True(t, plan.Barcode.Modules[0], "code128 starts with a dark bar")
}

func TestCareImageReservesSpace(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	e := newTestEngine(t, DefaultGeometry(), Options{CareImage: img, CareImageSource: "care.png"})
	plan, err := e.planSlot(BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl), slot{})
	require.NoError(t, err)

	require.NotNil(t, plan.CareImage)
	assert.Equal(t, 4.0, plan.CareImage.Height)
	assert.Equal(t, "care.png", plan.CareImage.Source)

	assert.InDelta(t, 4.0, plan.LineHeight, 1e-9)

	// The pictogram sits one line plus 1mm below the care header.
	var care layout.TextBox
	for _, box := range plan.Texts {
		if box.Content == careHeaderText {
			care = box
		}
	}
	require.NotZero(t, care.Content)
	assert.InDelta(t, care.Y+plan.LineHeight+1.0, plan.CareImage.Y, 1e-9)
}

func TestContentLineOrder(t *testing.T) {
	p := testProduct("SKU-1")
	p.Meta["attribute_pa_razmer"] = "46-48"
	p.Meta["attribute_pa_color"] = "красный"
	p.Content = "Состав: 80% хлопок, 20% эластан\n" +
		"Адрес изготовления: РФ, г. Иваново, ул. Ткацкая 1\n"

	e := newTestEngine(t, DefaultGeometry(), Options{})
	content := BuildContent(p, nil, e.resolver, e.tpl)

	var texts []string
	for _, ln := range content.Lines {
		texts = append(texts, ln.Text)
	}
	assert.Equal(t, []string{
		"EAC Джемпер детский",
		"Арт: SKU-1 Размер: 46-48, Цвет: красный",
		"Состав: 80% хлопок, 20% эластан",
		"Импортер: ИП Анисимов Д.В., г. Брест, ул. Московская 247 кв. 68, УНП 291760554",
		"Изготовитель: РФ, г. Иваново, ул. Ткацкая 1",
		"Дата изготовления:______202_г.",
		"Рекомендации по уходу:",
		"ЦЕНА: 25.50 руб",
	}, texts)

	assert.Equal(t, layout.FontBold, content.Lines[0].Font)
	assert.Equal(t, "center", content.Lines[0].Align)
	assert.Equal(t, layout.FontBold, content.Lines[1].Font)
	assert.True(t, content.Lines[len(content.Lines)-1].Price)
}

func TestContentHeightCaptionForLargeNumbers(t *testing.T) {
	p := testProduct("SKU-1")
	p.Meta["attribute_pa_rost"] = "98"

	e := newTestEngine(t, DefaultGeometry(), Options{})
	content := BuildContent(p, nil, e.resolver, e.tpl)
	assert.Equal(t, "Арт: SKU-1 Рост: 98", content.Lines[1].Text)
}

func TestContentPlaceholdersWhenExtractionMisses(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	content := BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl)

	var texts []string
	for _, ln := range content.Lines {
		texts = append(texts, ln.Text)
	}
	assert.Contains(t, texts, "Состав: ____________________")
	assert.Contains(t, texts, "Изготовитель: ____________________")
	assert.Equal(t, 2, countOf(texts, "____________________"), "two blank manufacturer continuation lines")
}

func TestPriceLineRenderedLarger(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	plan, err := e.planSlot(BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl), slot{})
	require.NoError(t, err)

	last := plan.Texts[len(plan.Texts)-1]
	require.True(t, strings.HasPrefix(last.Content, "ЦЕНА:"))
	assert.InDelta(t, layout.Length{Value: 8, Unit: layout.UnitPT}.ToMM(), last.FontSize, 1e-9)
	assert.Equal(t, layout.FontBold, last.Font)

	// Gap of 3mm above the price line relative to the line before it.
	prev := plan.Texts[len(plan.Texts)-2]
	assert.InDelta(t, prev.Y+plan.LineHeight+3.0, last.Y, 1e-9)
}

func TestBarcodeSkippedOnEncodeFailure(t *testing.T) {
	e := newTestEngine(t, DefaultGeometry(), Options{})
	content := BuildContent(testProduct("SKU-1"), nil, e.resolver, e.tpl)
	content.SKU = ""
	for i := range content.Lines {
		content.Lines[i].Text = strings.ReplaceAll(content.Lines[i].Text, "SKU-1", "")
	}
	plan, err := e.planSlot(content, slot{})
	require.NoError(t, err)
	assert.Nil(t, plan.Barcode)
}

func countOf(items []string, want string) int {
	n := 0
	for _, it := range items {
		if it == want {
			n++
		}
	}
	return n
}
