package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/canvas"
	"github.com/kaito5551995/slack-estimate-bot/internal/layout"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

// stubCanvas satisfies canvas.Canvas with fixed text metrics and a
// configurable Finish result.
type stubCanvas struct {
	pages     int
	finishPDF []byte
	finishErr error
}

func (s *stubCanvas) AddPage()       { s.pages++ }
func (s *stubCanvas) PageCount() int { return s.pages }
func (s *stubCanvas) MeasureTextHeight(text string, style canvas.TextStyle) float64 {
	return style.Size * 1.2
}
func (s *stubCanvas) DrawText(text string, x, y float64, style canvas.TextStyle) {}
func (s *stubCanvas) DrawLine(x1, y1, x2, y2 float64, style canvas.LineStyle)    {}
func (s *stubCanvas) DrawRect(x, y, w, h float64, style canvas.RectStyle)        {}
func (s *stubCanvas) DrawSeal(x, y float64)                                      {}
func (s *stubCanvas) Finish() ([]byte, error)                                    { return s.finishPDF, s.finishErr }

func newStubFactory(cv *stubCanvas) CanvasFactory {
	return func() canvas.Canvas {
		cv.pages = 1
		return cv
	}
}

func newTestGenerator(factory CanvasFactory) *Generator {
	engine := layout.NewEngine(layout.DefaultParams(), layout.Issuer{Name: "株式会社ミナト安全施設"}, zap.NewNop())
	g := NewGenerator(engine, factory, zap.NewNop())
	g.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return g
}

func sampleSubmission() models.Submission {
	return models.Submission{
		ClientCompany: "株式会社テスト商事",
		ClientPerson:  "山田太郎",
		DocumentType:  "estimate",
		ItemsText: "コーン標識,10個,3500円\n" +
			"ガードマン,20人,2800\n" +
			"諸経費,7%\n" +
			"法定福利費",
	}
}

func TestGenerateProducesFileAndSummary(t *testing.T) {
	cv := &stubCanvas{finishPDF: []byte("%PDF-stub")}
	g := newTestGenerator(newStubFactory(cv))

	result, err := g.Generate(sampleSubmission())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-stub"), result.PDF)
	assert.Equal(t, "Estimate_20240601.pdf", result.FileName)
	assert.Equal(t, 4, result.Summary.ItemCount)

	// 35000 + 56000 = 91000 taxable; +6370 surcharge +15015 levy,
	// 10% tax on 112385 floored.
	assert.Equal(t, int64(123623), result.Summary.GrandTotal)
}

func TestGenerateFileNamePerType(t *testing.T) {
	tests := []struct {
		docType string
		want    string
	}{
		{"estimate", "Estimate_20240601.pdf"},
		{"invoice", "Invoice_20240601.pdf"},
		{"receipt", "Receipt_20240601.pdf"},
		{"", "Estimate_20240601.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.docType, func(t *testing.T) {
			cv := &stubCanvas{finishPDF: []byte("%PDF-stub")}
			g := newTestGenerator(newStubFactory(cv))

			sub := sampleSubmission()
			sub.DocumentType = tt.docType
			result, err := g.Generate(sub)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.FileName)
		})
	}
}

func TestGenerateUnknownTypeFallsBackToQuotation(t *testing.T) {
	cv := &stubCanvas{finishPDF: []byte("%PDF-stub")}
	g := newTestGenerator(newStubFactory(cv))

	sub := sampleSubmission()
	sub.DocumentType = "purchase_order"
	result, err := g.Generate(sub)
	require.NoError(t, err)
	assert.Equal(t, "Estimate_20240601.pdf", result.FileName)
}

func TestGenerateNoParsableItems(t *testing.T) {
	g := newTestGenerator(newStubFactory(&stubCanvas{}))

	sub := sampleSubmission()
	sub.ItemsText = "\n   \n"
	_, err := g.Generate(sub)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestGenerateValidationErrorsPassThrough(t *testing.T) {
	g := newTestGenerator(newStubFactory(&stubCanvas{}))

	sub := sampleSubmission()
	sub.ClientCompany = " "
	_, err := g.Generate(sub)
	assert.ErrorIs(t, err, ErrMissingClientCompany)
}

func TestGenerateCanvasFault(t *testing.T) {
	fault := errors.New("font not embedded")
	cv := &stubCanvas{finishErr: fault}
	g := newTestGenerator(newStubFactory(cv))

	_, err := g.Generate(sampleSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, fault)
	assert.False(t, IsUserError(err))
}

func TestBuildKeepsDerivedEntryOrder(t *testing.T) {
	g := newTestGenerator(newStubFactory(&stubCanvas{}))

	doc, err := g.Build(sampleSubmission())
	require.NoError(t, err)
	require.Len(t, doc.Entries, 4)
	assert.Equal(t, models.CategoryStandard, doc.Entries[0].Category)
	assert.Equal(t, models.CategoryStandard, doc.Entries[1].Category)
	assert.Equal(t, models.CategoryPercentageSurcharge, doc.Entries[2].Category)
	assert.Equal(t, models.CategoryWelfareLevy, doc.Entries[3].Category)
}
