package layout

import "image"

// This file defines the laid-out page model shared by the label engine,
// the renderer and the debug JSON dump.

// Font names understood by the renderer. The embedded DejaVu faces cover
// the Cyrillic range used on the labels.
const (
	FontRegular = "DejaVuSans"
	FontBold    = "DejaVuSans-Bold"
)

// Result holds the pages produced by one generation run.
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// Page records the sheet dimensions and the elements placed on it.
// All coordinates are page coordinates with a top-left origin (unit: mm).
type Page struct {
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Texts    []TextBox  `json:"texts"`
	Images   []ImageBox `json:"images,omitempty"`
	Barcodes []Barcode  `json:"barcodes,omitempty"`
}

// TextBox represents a text block with resolved coordinates.
type TextBox struct {
	Content    string     `json:"content"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	LineHeight float64    `json:"lineHeight"`
	Font       string     `json:"font"`
	FontSize   float64    `json:"fontSize"`        // mm
	Align      string     `json:"align,omitempty"` // left (default) or center
	Lines      []TextLine `json:"lines"`
}

// TextLine is one typeset line of text with its measured width and height.
type TextLine struct {
	Content   string  `json:"content"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	GapBefore float64 `json:"gapBefore,omitempty"`
}

// ImageBox describes the placement rectangle for a decoded image. The
// pixel data is supplied by the caller and stays out of the debug JSON.
type ImageBox struct {
	Source string      `json:"source,omitempty"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Image  image.Image `json:"-"`
}

// Barcode describes a Code128 symbol placed on the page. Modules holds the
// encoded bar pattern (true = dark module); ScaleX stretches one module to
// the width that makes the symbol fill its usable span exactly.
type Barcode struct {
	Value   string  `json:"value"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Height  float64 `json:"height"`
	ScaleX  float64 `json:"scaleX"`
	Modules []bool  `json:"-"`
}

// NaturalWidth returns the unscaled symbol width in modules.
func (b Barcode) NaturalWidth() float64 { return float64(len(b.Modules)) }

// RenderedWidth returns the symbol width in mm after horizontal scaling.
func (b Barcode) RenderedWidth() float64 { return b.NaturalWidth() * b.ScaleX }

// DocumentMeta holds the PDF document information.
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
