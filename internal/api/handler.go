// Package api exposes the document pipeline over plain HTTP, next to
// the Slack flow: callers POST a structured submission and get the
// finished document bytes back.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/generator"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
	"github.com/kaito5551995/slack-estimate-bot/internal/render"
)

// Handler serves the direct document-generation endpoint.
type Handler struct {
	generator *generator.Generator
	excel     *render.ExcelRenderer
	logger    *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(gen *generator.Generator, excel *render.ExcelRenderer, logger *zap.Logger) *Handler {
	return &Handler{generator: gen, excel: excel, logger: logger}
}

// CreateDocument generates one document from a JSON submission and
// streams it back. `?format=xlsx` selects the spreadsheet export; the
// default is PDF. The summary record rides in response headers.
func (h *Handler) CreateDocument(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch c.Query("format") {
	case "", "pdf":
		result, err := h.generator.Generate(sub)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.summaryHeaders(c, result.Summary)
		c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
		c.Data(http.StatusOK, "application/pdf", result.PDF)

	case "xlsx":
		doc, err := h.generator.Build(sub)
		if err != nil {
			h.fail(c, err)
			return
		}
		data, err := h.excel.Render(doc)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.summaryHeaders(c, models.Summary{ItemCount: len(doc.Entries), GrandTotal: doc.GrandTotal})
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
	}
}

func (h *Handler) summaryHeaders(c *gin.Context, s models.Summary) {
	c.Header("X-Item-Count", strconv.Itoa(s.ItemCount))
	c.Header("X-Grand-Total", strconv.FormatInt(s.GrandTotal, 10))
}

// fail maps user-correctable input errors to 400 and everything else
// to 500.
func (h *Handler) fail(c *gin.Context, err error) {
	if generator.IsUserError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("document generation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "document generation failed"})
}
