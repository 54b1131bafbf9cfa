package label

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"etiketka/catalog"
	"etiketka/extract"
	"etiketka/layout"
)

// Geometry is the printable sheet and label geometry, all lengths in mm
// unless the name says otherwise.
type Geometry struct {
	PageWidth     float64
	PageHeight    float64
	LabelWidth    float64
	FontSizePt    float64
	MinLineHeight float64
	MaxLineHeight float64
	BarcodeHeight float64
	TopMargin     float64
	BottomMargin  float64
	LabelsPerPage int
}

// DefaultGeometry matches the 120x70 three-up thermal sheet the labels
// are printed on.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:     120,
		PageHeight:    70,
		LabelWidth:    40,
		FontSizePt:    6,
		MinLineHeight: 2.0,
		MaxLineHeight: 4.0,
		BarcodeHeight: 6,
		TopMargin:     2,
		BottomMargin:  0,
		LabelsPerPage: 3,
	}
}

// Fixed placement constants that are not worth configuring.
const (
	textInsetPt          = 4.0 // horizontal text inset per side
	careImageHeightMM    = 4.0
	careImageGapMM       = 2.0 // reserved below the care pictogram
	careImageLeadMM      = 1.0 // gap between care header and pictogram
	barcodeGapMM         = 2.0 // reserved below the barcode
	barcodeSidePaddingMM = 2.0
	priceGapMM           = 3.0 // extra lead above the price line
	priceFontSizePt      = 8.0
	minTextSpaceMM       = 5.0
)

// Options carries the engine collaborators. Typesetter is required.
type Options struct {
	Typesetter      layout.Typesetter
	Resolver        *extract.MeasurementResolver
	Templates       Templates
	CareImage       image.Image
	CareImageSource string
	Logger          *slog.Logger
}

// Engine lays out label content into absolutely positioned pages.
type Engine struct {
	geo        Geometry
	ts         layout.Typesetter
	resolver   *extract.MeasurementResolver
	tpl        Templates
	careImage  image.Image
	careSource string
	log        *slog.Logger
}

func NewEngine(geo Geometry, opts Options) (*Engine, error) {
	if opts.Typesetter == nil {
		return nil, errors.New("label: typesetter is required")
	}
	if geo.LabelWidth <= 0 || geo.PageHeight <= 0 {
		return nil, fmt.Errorf("label: invalid geometry %+v", geo)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = extract.NewMeasurementResolver(nil, log)
	}
	tpl := opts.Templates
	if tpl == (Templates{}) {
		tpl = DefaultTemplates()
	}
	return &Engine{
		geo:        geo,
		ts:         opts.Typesetter,
		resolver:   resolver,
		tpl:        tpl,
		careImage:  opts.CareImage,
		careSource: opts.CareImageSource,
		log:        log,
	}, nil
}

// Plan is the placed geometry of one label slot.
type Plan struct {
	PageIndex  int
	SlotIndex  int
	X          float64
	LineHeight float64
	Texts      []layout.TextBox
	CareImage  *layout.ImageBox
	Barcode    *layout.Barcode
}

// placedLine is one wrapped physical line with its role flags. Role
// flags stick to the last wrapped line of the logical line they came
// from, matching how the pictogram and barcode anchor below it.
type placedLine struct {
	font     string
	text     string
	width    float64
	align    string
	fontSize float64 // render size, mm
	care     bool
	price    bool
}

// Generate builds the full page plan for the given expanded product
// list, one label slot per product, in input order.
func (e *Engine) Generate(products []catalog.Product, slugToLabel map[string]string) (*layout.Result, error) {
	pg := newPager(e.geo.LabelsPerPage)
	var pages []layout.Page
	for _, p := range products {
		content := BuildContent(p, slugToLabel, e.resolver, e.tpl)
		plan, err := e.planSlot(content, pg.next())
		if err != nil {
			return nil, fmt.Errorf("label for %s: %w", content.SKU, err)
		}
		for plan.PageIndex >= len(pages) {
			pages = append(pages, layout.Page{Width: e.geo.PageWidth, Height: e.geo.PageHeight})
		}
		pageRef := &pages[plan.PageIndex]
		pageRef.Texts = append(pageRef.Texts, plan.Texts...)
		if plan.CareImage != nil {
			pageRef.Images = append(pageRef.Images, *plan.CareImage)
		}
		if plan.Barcode != nil {
			pageRef.Barcodes = append(pageRef.Barcodes, *plan.Barcode)
		}
	}
	return &layout.Result{
		Pages: pages,
		Meta:  layout.DocumentMeta{Title: "Этикетки", Creator: "etiketka"},
	}, nil
}

// planSlot wraps the content lines, picks a line height that fills the
// available label height, and places text, pictogram and barcode.
func (e *Engine) planSlot(content Content, st slot) (Plan, error) {
	x := float64(st.PosInPage) * e.geo.LabelWidth
	inset := layout.Length{Value: textInsetPt, Unit: layout.UnitPT}.ToMM()
	wrapWidth := e.geo.LabelWidth - 2*inset
	baseFont := layout.Length{Value: e.geo.FontSizePt, Unit: layout.UnitPT}.ToMM()
	priceFont := layout.Length{Value: priceFontSizePt, Unit: layout.UnitPT}.ToMM()

	var lines []placedLine
	hasCare := false
	hasBarcode := false
	for _, ln := range content.Lines {
		wrapped, err := e.ts.LayoutLines(ln.Text, wrapWidth, ln.Font, baseFont, baseFont)
		if err != nil {
			return Plan{}, fmt.Errorf("wrap %q: %w", ln.Text, err)
		}
		for i, sub := range wrapped {
			last := i == len(wrapped)-1
			pl := placedLine{
				font:     ln.Font,
				text:     sub.Content,
				width:    sub.Width,
				align:    ln.Align,
				fontSize: baseFont,
			}
			if ln.Care && last && e.careImage != nil {
				pl.care = true
				hasCare = true
			}
			if ln.Price && last {
				pl.price = true
				pl.fontSize = priceFont
				hasBarcode = true
			}
			lines = append(lines, pl)
		}
	}

	// Reserve fixed-height extras, then spread the remaining vertical
	// space across the text lines, clamped to the configured range.
	reserved := 0.0
	if hasCare {
		reserved += careImageHeightMM + careImageGapMM
	}
	if hasBarcode {
		reserved += e.geo.BarcodeHeight + barcodeGapMM
	}
	textSpace := e.geo.PageHeight - e.geo.TopMargin - e.geo.BottomMargin - reserved
	if textSpace < minTextSpaceMM {
		textSpace = minTextSpaceMM
	}
	lineHeight := e.geo.MinLineHeight
	if n := len(lines); n > 0 {
		lineHeight = textSpace / float64(n)
		if lineHeight < e.geo.MinLineHeight {
			lineHeight = e.geo.MinLineHeight
		}
		if lineHeight > e.geo.MaxLineHeight {
			lineHeight = e.geo.MaxLineHeight
		}
	}

	plan := Plan{
		PageIndex:  st.Page,
		SlotIndex:  st.Index,
		X:          x,
		LineHeight: lineHeight,
	}
	cursor := e.geo.TopMargin
	for _, pl := range lines {
		if pl.price {
			cursor += priceGapMM
		}
		box := layout.TextBox{
			Content:    pl.text,
			X:          x + inset,
			Y:          cursor,
			Width:      wrapWidth,
			LineHeight: lineHeight,
			Font:       pl.font,
			FontSize:   pl.fontSize,
			Align:      pl.align,
			Lines: []layout.TextLine{
				{Content: pl.text, Width: pl.width, Height: pl.fontSize},
			},
		}
		if pl.align == "center" {
			// centered lines span the whole label, not the inset box
			box.X = x
			box.Width = e.geo.LabelWidth
		}
		plan.Texts = append(plan.Texts, box)
		cursor += lineHeight

		if pl.care {
			cursor += careImageLeadMM
			plan.CareImage = &layout.ImageBox{
				Source: e.careSource,
				X:      x + inset,
				Y:      cursor,
				Width:  wrapWidth,
				Height: careImageHeightMM,
				Image:  e.careImage,
			}
			cursor += careImageHeightMM
		}
		if pl.price {
			if bc := e.buildBarcode(content.SKU, x, cursor); bc != nil {
				plan.Barcode = bc
			}
		}
	}
	return plan, nil
}

// buildBarcode encodes the SKU and stretches it to the label width
// minus side paddings. Encoding failures skip the barcode rather than
// failing the label.
func (e *Engine) buildBarcode(sku string, x, y float64) *layout.Barcode {
	modules, err := encodeBarcode(sku)
	if err != nil {
		e.log.Warn("skipping barcode", "sku", sku, "error", err)
		return nil
	}
	if len(modules) == 0 {
		return nil
	}
	usable := e.geo.LabelWidth - 2*barcodeSidePaddingMM
	scale := usable / float64(len(modules))
	return &layout.Barcode{
		Value:   sku,
		X:       x + barcodeSidePaddingMM,
		Y:       y,
		Height:  e.geo.BarcodeHeight,
		ScaleX:  scale,
		Modules: modules,
	}
}
