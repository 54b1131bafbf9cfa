// Package canvasrenderer draws layout results with github.com/tdewolff/canvas
// and writes them out as PDF pages or rasterized PNG previews. It also
// implements layout.Typesetter with a greedy word wrap so the layout engine
// measures text with the exact faces used for drawing.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"etiketka/fonts"
	"etiketka/layout"
	"etiketka/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
// Fonts are loaded once from the embedded set at construction.
type Renderer struct {
	families map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// NewRenderer loads the embedded label fonts and returns a ready renderer.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{families: map[string]*canvas.FontFamily{}}
	for _, name := range []string{layout.FontRegular, layout.FontBold} {
		data, err := fonts.Load(name)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", name, err)
		}
		family := canvas.NewFontFamily(name)
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("parse font %s: %w", name, err)
		}
		r.families[name] = family
	}
	return r, nil
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	r.applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the layout

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG rasterizes a single page at the given resolution, for quick
// visual checks without a PDF viewer.
func (r *Renderer) RenderPNG(result *layout.Result, pageIndex int, dpmm float64) ([]byte, error) {
	if result == nil || pageIndex < 0 || pageIndex >= len(result.Pages) {
		return nil, fmt.Errorf("no page %d to render", pageIndex)
	}
	if dpmm <= 0 {
		dpmm = 10
	}
	page := result.Pages[pageIndex]
	c := canvas.New(page.Width, page.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(page.Width, page.Height))
	if err := r.drawPage(ctx, page); err != nil {
		return nil, err
	}
	img := rasterizer.Draw(c, canvas.DPMM(dpmm), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// LayoutLines implements layout.Typesetter with a greedy word wrap.
// All lengths are mm; the font system speaks pt, converted at the boundary.
func (r *Renderer) LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]layout.TextLine, error) {
	face, err := r.fontFace(font, toPt(fontSize))
	if err != nil {
		return nil, err
	}

	lines := greedyWrapTokens(content, width, face)
	textHeight := face.Metrics().LineHeight
	if textHeight <= 0 {
		textHeight = lineHeight
	}
	leading := math.Max(lineHeight-textHeight, 0)
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: "", Width: 0, Height: textHeight}}
	}
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = textHeight
		}
		if i > 0 {
			lines[i].GapBefore = leading
		}
	}
	return lines, nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return err
		}
	}
	if err := r.drawImages(ctx, page.Images); err != nil {
		return err
	}
	r.drawBarcodes(ctx, page.Barcodes)
	return nil
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	face, err := r.fontFace(tb.Font, toPt(tb.FontSize))
	if err != nil {
		return err
	}

	lines := tb.Lines
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: tb.Content, Width: tb.Width, Height: tb.LineHeight}}
	}

	var textAlign canvas.TextAlign
	var anchorX float64
	switch strings.ToLower(tb.Align) {
	case "center":
		textAlign = canvas.Center
		anchorX = tb.X + tb.Width/2
	case "right":
		textAlign = canvas.Right
		anchorX = tb.X + tb.Width
	default:
		textAlign = canvas.Left
		anchorX = tb.X
	}

	cursorY := tb.Y
	for _, line := range lines {
		cursorY += line.GapBefore
		textLine := canvas.NewTextLine(face, line.Content, textAlign)

		lineHeight := line.Height
		if lineHeight <= 0 {
			lineHeight = tb.LineHeight
		}

		// baseline sits the font ascent below the line top
		baseline := cursorY + face.Metrics().Ascent
		ctx.DrawText(anchorX, baseline, textLine)
		cursorY += lineHeight
	}
	return nil
}

// drawImages stretches each decoded image to its box. The resolution is
// derived from the box width so a single DPMM covers both axes after the
// pixel resize.
func (r *Renderer) drawImages(ctx *canvas.Context, images []layout.ImageBox) error {
	for _, box := range images {
		if box.Image == nil || box.Width <= 0 || box.Height <= 0 {
			continue
		}
		srcW := box.Image.Bounds().Dx()
		if srcW <= 0 {
			continue
		}
		targetH := int(math.Round(float64(srcW) * box.Height / box.Width))
		if targetH < 1 {
			targetH = 1
		}
		img := imaging.Resize(box.Image, srcW, targetH, imaging.Lanczos)
		dpmm := float64(srcW) / box.Width
		ctx.DrawImage(box.X, box.Y, img, canvas.DPMM(dpmm))
	}
	return nil
}

// drawBarcodes fills one rectangle per run of dark modules.
func (r *Renderer) drawBarcodes(ctx *canvas.Context, barcodes []layout.Barcode) {
	ctx.SetFillColor(canvas.Black)
	ctx.SetStrokeColor(canvas.Transparent)
	for _, bc := range barcodes {
		if bc.ScaleX <= 0 || bc.Height <= 0 {
			continue
		}
		run := 0
		for i := 0; i <= len(bc.Modules); i++ {
			dark := i < len(bc.Modules) && bc.Modules[i]
			if dark {
				run++
				continue
			}
			if run > 0 {
				x := bc.X + float64(i-run)*bc.ScaleX
				ctx.DrawPath(x, bc.Y, canvas.Rectangle(float64(run)*bc.ScaleX, bc.Height))
				run = 0
			}
		}
	}
}

func (r *Renderer) fontFace(name string, sizePt float64) (*canvas.FontFace, error) {
	family, ok := r.families[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}
	return family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

// toPt converts millimetres to points.
func toPt(mm float64) float64 { return mm * layout.MmToPt }

// greedyWrapTokens splits content into lines no wider than width (mm),
// preferring whitespace boundaries and splitting inside a token only when
// the token alone exceeds the limit. Explicit newlines always break.
func greedyWrapTokens(content string, width float64, face *canvas.FontFace) []layout.TextLine {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	tokens := tokenizeContent(content)
	var lines []layout.TextLine
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, layout.TextLine{Content: "", Width: 0})
			}
			return
		}
		lines = append(lines, layout.TextLine{Content: builder.String(), Width: currentWidth})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokens {
		if token == "\n" {
			emit(true)
			continue
		}

		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}

		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}

	emit(true)
	return lines
}

func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitTokenByWidth(token string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
