package layout

// Typesetter breaks text into drawable lines under a width constraint.
// All lengths (width, fontSize, lineHeight, returned line widths) are mm;
// font names the face to measure with (FontRegular or FontBold).
type Typesetter interface {
	LayoutLines(content string, width float64, font string, fontSize float64, lineHeight float64) ([]TextLine, error)
}
