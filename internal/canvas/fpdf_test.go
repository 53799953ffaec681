package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Canvas = (*PDF)(nil)

func newTestPDF() *PDF {
	// No font directory: the core font fallback keeps the test
	// independent of bundled assets.
	return NewPDF(Options{Seal: SealText{Right: "TS", Middle: "CO", Left: "LT"}})
}

func TestNewPDFStartsWithOnePage(t *testing.T) {
	cv := newTestPDF()
	assert.Equal(t, 1, cv.PageCount())

	cv.AddPage()
	cv.AddPage()
	assert.Equal(t, 3, cv.PageCount())
}

func TestPDFFinishProducesDocument(t *testing.T) {
	cv := newTestPDF()

	black := Black
	fill := HeaderFill

	cv.DrawText("Quotation", 40, 40, TextStyle{Font: FontMincho, Size: 22, Color: Black, Width: 515, Align: "C"})
	cv.DrawText("no explicit width", 40, 80, TextStyle{Font: FontGothic, Size: 10, Color: Black})
	cv.DrawLine(40, 120, 555, 120, LineStyle{Width: 0.5, Color: RuleGray})
	cv.DrawRect(40, 140, 515, 20, RectStyle{Fill: &fill, Stroke: &black, LineWidth: 1})
	cv.DrawRect(40, 180, 515, 80, RectStyle{Stroke: &black, LineWidth: 0.5})
	cv.DrawSeal(470, 150)
	cv.AddPage()
	cv.DrawText("second page", 40, 50, TextStyle{Font: FontGothic, Size: 10, Color: MutedGray, Width: 495})

	data, err := cv.Finish()
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFMeasureTextHeight(t *testing.T) {
	cv := newTestPDF()

	style := TextStyle{Font: FontGothic, Size: 10, Width: 250}
	short := cv.MeasureTextHeight("cone", style)
	assert.InDelta(t, 12.0, short, 0.01)

	long := cv.MeasureTextHeight(
		"barricade fence 1800mm heavy duty galvanized steel with reflective stripes and anchor plates",
		style)
	assert.Greater(t, long, short, "wrapped text occupies more than one line")

	// Zero width means a single unwrapped line.
	assert.InDelta(t, 12.0, cv.MeasureTextHeight("anything at all", TextStyle{Font: FontGothic, Size: 10}), 0.01)

	// LineGap widens each line.
	gapped := TextStyle{Font: FontGothic, Size: 10, Width: 250, LineGap: 2}
	assert.InDelta(t, 14.0, cv.MeasureTextHeight("cone", gapped), 0.01)
}
