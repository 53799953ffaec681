// Package canvas defines the page-oriented drawing surface consumed by
// the layout engine, and provides a PDF-backed implementation. The
// layout engine owns all geometry decisions; this package owns fonts,
// colors and the byte-level output format.
package canvas

// Font names understood by every Canvas implementation.
const (
	FontGothic = "Gothic" // sans-serif body font
	FontMincho = "Mincho" // serif display font
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

var (
	Black      = Color{0, 0, 0}
	HeaderFill = Color{240, 240, 240}
	RuleGray   = Color{204, 204, 204}
	MutedGray  = Color{102, 102, 102}
	SealRed    = Color{178, 34, 34}
)

// TextStyle controls how a piece of text is drawn and measured.
type TextStyle struct {
	Font    string  // FontGothic or FontMincho
	Size    float64 // point size
	Color   Color
	Width   float64 // wrap width; 0 draws a single unwrapped line
	Align   string  // "L", "C" or "R" within Width
	LineGap float64 // extra spacing between wrapped lines
}

// LineStyle controls stroked lines.
type LineStyle struct {
	Width float64
	Color Color
}

// RectStyle controls rectangles. Nil Fill or Stroke disables that
// operation.
type RectStyle struct {
	Fill      *Color
	Stroke    *Color
	LineWidth float64
}

// Canvas is one document being drawn. Implementations are not safe for
// concurrent use; every document gets its own instance.
type Canvas interface {
	// AddPage starts a new page; subsequent drawing lands on it.
	AddPage()
	// PageCount reports the number of pages started so far.
	PageCount() int
	// MeasureTextHeight returns the height text will occupy when
	// wrapped to style.Width.
	MeasureTextHeight(text string, style TextStyle) float64
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y float64, style TextStyle)
	DrawLine(x1, y1, x2, y2 float64, style LineStyle)
	DrawRect(x, y, w, h float64, style RectStyle)
	// DrawSeal draws the decorative issuer seal with its top-left
	// corner at (x, y). Purely cosmetic; no effect on pagination.
	DrawSeal(x, y float64)
	// Finish closes the document and returns its bytes, surfacing any
	// fault accumulated by the backing surface.
	Finish() ([]byte, error)
}
