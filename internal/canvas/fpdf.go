package canvas

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	gofpdf "github.com/lvillar/gofpdf"
)

// SealText holds the three vertical glyph columns of the issuer seal,
// right to left.
type SealText struct {
	Right  string
	Middle string
	Left   string
}

// Options configures the PDF canvas factory.
type Options struct {
	// FontDir is searched for NotoSansJP-Regular.ttf and
	// NotoSerifJP-Regular.ttf. Missing files fall back to the core
	// Helvetica/Times fonts, which cannot render Japanese glyphs.
	FontDir string
	Seal    SealText
}

const (
	gothicFontFile = "NotoSansJP-Regular.ttf"
	minchoFontFile = "NotoSerifJP-Regular.ttf"
)

// PDF is a Canvas backed by gofpdf, producing A4 portrait pages
// measured in points with a top-left origin.
type PDF struct {
	pdf    *gofpdf.Fpdf
	gothic string // resolved family name for FontGothic
	mincho string // resolved family name for FontMincho
	seal   SealText
}

// NewPDF starts a new single-document PDF canvas with its first page
// already open.
func NewPDF(opts Options) *PDF {
	pdf := gofpdf.New("P", "pt", "A4", "")
	// The layout engine decides every page break itself.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)

	c := &PDF{pdf: pdf, gothic: "Helvetica", mincho: "Times", seal: opts.Seal}
	if path := filepath.Join(opts.FontDir, gothicFontFile); fileExists(path) {
		pdf.AddUTF8Font(FontGothic, "", path)
		c.gothic = FontGothic
	}
	if path := filepath.Join(opts.FontDir, minchoFontFile); fileExists(path) {
		pdf.AddUTF8Font(FontMincho, "", path)
		c.mincho = FontMincho
	}

	pdf.AddPage()
	return c
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (c *PDF) family(name string) string {
	if name == FontMincho {
		return c.mincho
	}
	return c.gothic
}

func lineHeight(style TextStyle) float64 {
	return style.Size*1.2 + style.LineGap
}

// AddPage starts a new page.
func (c *PDF) AddPage() {
	c.pdf.AddPage()
}

// PageCount reports pages started so far.
func (c *PDF) PageCount() int {
	return c.pdf.PageCount()
}

// MeasureTextHeight returns the wrapped height of text at style.Width.
func (c *PDF) MeasureTextHeight(text string, style TextStyle) float64 {
	c.pdf.SetFont(c.family(style.Font), "", style.Size)
	width := style.Width
	if width <= 0 {
		return lineHeight(style)
	}
	lines := c.pdf.SplitText(text, width)
	if len(lines) == 0 {
		return lineHeight(style)
	}
	return float64(len(lines)) * lineHeight(style)
}

// DrawText draws text with its top-left corner at (x, y), wrapped to
// style.Width when set.
func (c *PDF) DrawText(text string, x, y float64, style TextStyle) {
	c.pdf.SetFont(c.family(style.Font), "", style.Size)
	c.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)

	width := style.Width
	if width <= 0 {
		width = c.pdf.GetStringWidth(text) + 2
	}
	align := style.Align
	if align == "" {
		align = "L"
	}
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(width, lineHeight(style), text, "", align, false)
}

// DrawLine strokes a line between two points.
func (c *PDF) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	c.pdf.SetLineWidth(style.Width)
	c.pdf.SetDrawColor(style.Color.R, style.Color.G, style.Color.B)
	c.pdf.Line(x1, y1, x2, y2)
}

// DrawRect draws a rectangle, filled and/or stroked per the style.
func (c *PDF) DrawRect(x, y, w, h float64, style RectStyle) {
	mode := ""
	if style.Fill != nil {
		c.pdf.SetFillColor(style.Fill.R, style.Fill.G, style.Fill.B)
		mode = "F"
	}
	if style.Stroke != nil {
		if style.LineWidth > 0 {
			c.pdf.SetLineWidth(style.LineWidth)
		}
		c.pdf.SetDrawColor(style.Stroke.R, style.Stroke.G, style.Stroke.B)
		mode += "D"
	}
	if mode == "" {
		mode = "D"
	}
	c.pdf.Rect(x, y, w, h, mode)
}

// Seal geometry: a slightly rotated double border, three vertical
// glyph columns, and light white speckling for a worn-stamp look.
const (
	sealSize      = 56.0
	sealAngle     = -2.0
	sealFontSize  = 11.0
	sealGlyphStep = 12.0
	sealSpeckles  = 50
)

// DrawSeal draws the issuer seal with its top-left corner at (x, y).
func (c *PDF) DrawSeal(x, y float64) {
	pdf := c.pdf

	pdf.TransformBegin()
	pdf.TransformRotate(sealAngle, x+sealSize/2, y+sealSize/2)
	pdf.SetAlpha(0.85, "Normal")

	pdf.SetDrawColor(SealRed.R, SealRed.G, SealRed.B)
	pdf.SetLineWidth(2.5)
	pdf.Rect(x, y, sealSize, sealSize, "D")
	pdf.SetLineWidth(1)
	pdf.Rect(x+3, y+3, sealSize-6, sealSize-6, "D")

	pdf.SetTextColor(SealRed.R, SealRed.G, SealRed.B)
	pdf.SetFont(c.mincho, "", sealFontSize)

	textY := y + 5
	c.drawSealColumn(c.seal.Right, x+sealSize-16, textY)
	c.drawSealColumn(c.seal.Middle, x+sealSize/2-6, textY)
	c.drawSealColumn(c.seal.Left, x+6, textY+sealGlyphStep+6)

	// Worn-stamp speckling.
	pdf.SetFillColor(255, 255, 255)
	for i := 0; i < sealSpeckles; i++ {
		nx := x + rand.Float64()*sealSize
		ny := y + rand.Float64()*sealSize
		pdf.Circle(nx, ny, rand.Float64()*1.5, "F")
	}

	pdf.SetAlpha(1.0, "Normal")
	pdf.TransformEnd()
}

// drawSealColumn draws one vertical column of seal glyphs.
func (c *PDF) drawSealColumn(text string, x, y float64) {
	for _, r := range text {
		c.pdf.Text(x, y+sealFontSize, string(r))
		y += sealGlyphStep
	}
}

// Finish closes the document and returns the PDF bytes.
func (c *PDF) Finish() ([]byte, error) {
	if c.pdf.Err() {
		return nil, fmt.Errorf("canvas fault: %w", c.pdf.Error())
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("canvas fault: %w", err)
	}
	return buf.Bytes(), nil
}
