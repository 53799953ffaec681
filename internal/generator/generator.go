// Package generator orchestrates the document pipeline: raw submission
// text through parsing, pricing and building to the final rendered
// bytes. Data flows strictly forward; no stage re-enters an earlier
// one.
package generator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/canvas"
	"github.com/kaito5551995/slack-estimate-bot/internal/layout"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
	"github.com/kaito5551995/slack-estimate-bot/internal/parser"
	"github.com/kaito5551995/slack-estimate-bot/internal/pricing"
)

// CanvasFactory opens a fresh drawing surface. Every document gets its
// own canvas, which keeps concurrent submissions independent.
type CanvasFactory func() canvas.Canvas

// Result is one finished document plus the summary record for the
// caller's notification message.
type Result struct {
	PDF      []byte
	FileName string
	Summary  models.Summary
}

// Generator turns submissions into finished documents.
type Generator struct {
	layout    *layout.Engine
	newCanvas CanvasFactory
	now       func() time.Time
	logger    *zap.Logger
}

// NewGenerator creates a document generator.
func NewGenerator(layoutEngine *layout.Engine, newCanvas CanvasFactory, logger *zap.Logger) *Generator {
	return &Generator{
		layout:    layoutEngine,
		newCanvas: newCanvas,
		now:       time.Now,
		logger:    logger,
	}
}

// Build parses, prices and assembles the document without rendering
// it. It fails with ErrNoItems when no valid line survives parsing,
// or with a validation error from the builder.
func (g *Generator) Build(sub models.Submission) (*models.Document, error) {
	typ, err := models.ParseDocumentType(sub.DocumentType)
	if err != nil {
		g.logger.Warn("unknown document type, defaulting to quotation",
			zap.String("document_type", sub.DocumentType))
	}

	items := parser.ParseItems(sub.ItemsText)
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	priced := pricing.Price(items)
	return BuildDocument(typ, sub.ClientCompany, sub.ClientPerson, priced, sub.Remarks, g.now())
}

// Generate runs the full pipeline and renders the document to PDF
// bytes. Either a complete document comes back or nothing does; there
// is no partial output.
func (g *Generator) Generate(sub models.Submission) (*Result, error) {
	doc, err := g.Build(sub)
	if err != nil {
		return nil, err
	}

	cv := g.newCanvas()
	g.layout.Render(doc, cv)

	pdf, err := cv.Finish()
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", doc.Type.FilePrefix(), err)
	}

	result := &Result{
		PDF:      pdf,
		FileName: fmt.Sprintf("%s_%s.pdf", doc.Type.FilePrefix(), doc.IssuedOn.Format("20060102")),
		Summary: models.Summary{
			ItemCount:  len(doc.Entries),
			GrandTotal: doc.GrandTotal,
		},
	}

	g.logger.Info("document generated",
		zap.String("file_name", result.FileName),
		zap.Int("item_count", result.Summary.ItemCount),
		zap.Int64("grand_total", result.Summary.GrandTotal))

	return result, nil
}
