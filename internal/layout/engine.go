// Package layout renders a priced document onto an abstract canvas,
// computing per-row heights, deciding page breaks and repeating the
// table header on every page that carries item rows.
package layout

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaito5551995/slack-estimate-bot/internal/canvas"
	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

// Fixed column geometry of the entries table, in points.
const (
	tableX      = 40
	tableWidth  = 515
	tableRight  = tableX + tableWidth
	nameColX    = 40
	nameColW    = 250
	qtyColX     = 300
	priceColX   = 380
	amountColX  = 470
	rowTextPadX = 10 // name text inset inside its column
	rowTextPadY = 8  // text inset from the row top

	summaryBoxX    = 280
	summaryLabelX  = summaryBoxX + 20
	summaryAmountX = summaryBoxX + 190
	remarksBoxH    = 80
	nameLineGap    = 2
)

// Engine lays out documents. It holds no per-document state; the
// layout cursor is threaded explicitly through the render pass, so one
// engine may serve concurrent renders as long as each gets its own
// canvas.
type Engine struct {
	params  Params
	issuer  Issuer
	printer *message.Printer
	logger  *zap.Logger
}

// NewEngine creates a layout engine with the given geometry and issuer
// block.
func NewEngine(params Params, issuer Issuer, logger *zap.Logger) *Engine {
	return &Engine{
		params:  params,
		issuer:  issuer,
		printer: message.NewPrinter(language.Japanese),
		logger:  logger,
	}
}

// Render draws the whole document onto cv. Content size never fails
// layout: rows that do not fit open further pages. Canvas faults
// surface later from Canvas.Finish.
func (e *Engine) Render(doc *models.Document, cv canvas.Canvas) {
	top := e.params.PageMargin

	y := e.renderTitle(cv, doc, top)
	startY := e.renderIssueDate(cv, doc, y)

	clientBottom := e.renderClientBlock(cv, doc, startY)
	issuerBottom := e.renderIssuerBlock(cv, startY)
	blocksBottom := math.Max(clientBottom, issuerBottom)

	y = e.renderEntries(cv, doc, blocksBottom)
	y = e.renderSummary(cv, doc, y)
	e.renderRemarks(cv, doc, y)

	e.logger.Debug("document laid out",
		zap.Int("entries", len(doc.Entries)),
		zap.Int("pages", cv.PageCount()))
}

// renderTitle draws the centered heading with its double underline and
// returns the cursor below it.
func (e *Engine) renderTitle(cv canvas.Canvas, doc *models.Document, top float64) float64 {
	style := canvas.TextStyle{Font: canvas.FontMincho, Size: 22, Color: canvas.Black, Width: tableWidth, Align: "C"}
	cv.DrawText(doc.Type.Title(), tableX, top, style)

	underlineY := top + cv.MeasureTextHeight(doc.Type.Title(), style) + 5
	cv.DrawLine(220, underlineY, 375, underlineY, canvas.LineStyle{Width: 2, Color: canvas.Black})
	cv.DrawLine(220, underlineY+3, 375, underlineY+3, canvas.LineStyle{Width: 0.5, Color: canvas.Black})

	return underlineY + 3
}

// renderIssueDate draws the right-aligned issue date and returns the
// top of the header blocks below it.
func (e *Engine) renderIssueDate(cv canvas.Canvas, doc *models.Document, y float64) float64 {
	dateY := y + 15
	text := fmt.Sprintf("%d年 %d月 %d日", doc.IssuedOn.Year(), int(doc.IssuedOn.Month()), doc.IssuedOn.Day())
	style := canvas.TextStyle{Font: canvas.FontGothic, Size: 10, Color: canvas.Black, Width: tableWidth, Align: "R"}
	cv.DrawText(text, tableX, dateY, style)
	return dateY + cv.MeasureTextHeight(text, style) + 20
}

// renderClientBlock draws the addressee, greeting and the highlighted
// grand-total callout on the left, returning its bottom edge.
func (e *Engine) renderClientBlock(cv canvas.Canvas, doc *models.Document, startY float64) float64 {
	cv.DrawText(doc.ClientCompany+"  御中", 50, startY,
		canvas.TextStyle{Font: canvas.FontMincho, Size: 14, Color: canvas.Black, Width: 300})
	cv.DrawText(doc.ClientPerson+"  様", 50, startY+25,
		canvas.TextStyle{Font: canvas.FontMincho, Size: 11, Color: canvas.Black, Width: 300})
	cv.DrawLine(50, startY+45, 300, startY+45, canvas.LineStyle{Width: 0.5, Color: canvas.Black})

	cv.DrawText(doc.Type.Greeting(), 50, startY+60,
		canvas.TextStyle{Font: canvas.FontGothic, Size: 10, Color: canvas.Black, Width: 300})

	cv.DrawText(doc.Type.AmountLabel(), 50, startY+95,
		canvas.TextStyle{Font: canvas.FontMincho, Size: 12, Color: canvas.Black})
	cv.DrawText(fmt.Sprintf("%s (税込)", e.yen(doc.GrandTotal)), 130, startY+92,
		canvas.TextStyle{Font: canvas.FontMincho, Size: 18, Color: canvas.Black})
	cv.DrawLine(50, startY+115, 300, startY+115, canvas.LineStyle{Width: 1, Color: canvas.Black})

	return startY + 115
}

// renderIssuerBlock draws the issuer name, seal and contact lines on
// the right, returning its bottom edge.
func (e *Engine) renderIssuerBlock(cv canvas.Canvas, startY float64) float64 {
	const companyX = 360

	cv.DrawText(e.issuer.Name, companyX, startY+40,
		canvas.TextStyle{Font: canvas.FontMincho, Size: 13, Color: canvas.Black, Width: 195})
	cv.DrawSeal(companyX+110, startY+25)

	info := canvas.TextStyle{Font: canvas.FontGothic, Size: 9, Color: canvas.Black, Width: 195}
	infoY := startY + 60
	lines := []string{
		e.issuer.Representative,
		"〒" + e.issuer.PostalCode,
		e.issuer.Address,
		"TEL: " + e.issuer.Tel,
		"MAIL: " + e.issuer.Email,
	}
	for i, line := range lines {
		cv.DrawText(line, companyX, infoY+float64(i)*15, info)
	}
	return infoY + float64(len(lines)-1)*15 + 11
}

// renderEntries draws the entries table with dynamic row heights and
// page breaks, returning the cursor below the last row.
func (e *Engine) renderEntries(cv canvas.Canvas, doc *models.Document, blocksBottom float64) float64 {
	p := e.params

	// The table starts at a fixed minimum for consistent short
	// headers, but always clears whatever was drawn above it.
	tableTop := math.Max(p.MinTableTop, blocksBottom+p.TableGap)
	if tableTop > p.TableStartLimit {
		cv.AddPage()
		tableTop = p.NewPageTop
	}

	y := e.renderTableHeader(cv, tableTop)

	nameStyle := canvas.TextStyle{Font: canvas.FontGothic, Size: 10, Color: canvas.Black, Width: nameColW, LineGap: nameLineGap}
	cellStyle := canvas.TextStyle{Font: canvas.FontGothic, Size: 10, Color: canvas.Black}

	for _, entry := range doc.Entries {
		rowHeight := math.Max(p.MinRowHeight, cv.MeasureTextHeight(entry.Name, nameStyle)+p.RowPadding)

		// The header row is redrawn after every break; it is never
		// omitted on a page that carries rows.
		if y+rowHeight > p.RowOverflowLimit {
			cv.AddPage()
			y = e.renderTableHeader(cv, p.NewPageTop)
		}

		cv.DrawLine(tableX, y+rowHeight, tableRight, y+rowHeight,
			canvas.LineStyle{Width: 0.5, Color: canvas.RuleGray})

		cv.DrawText(entry.Name, nameColX+rowTextPadX, y+rowTextPadY, nameStyle)

		// Derived categories show only the computed amount; their
		// quantity and unit price carry no meaning of their own.
		if !entry.QuantityHidden {
			cv.DrawText(e.quantityText(entry), qtyColX, y+rowTextPadY, cellStyle)
		}
		if !entry.UnitPriceHidden {
			cv.DrawText(e.yen(entry.UnitPrice), priceColX, y+rowTextPadY, cellStyle)
		}
		cv.DrawText(e.yen(entry.Amount), amountColX, y+rowTextPadY, cellStyle)

		y += rowHeight
	}

	return y
}

// renderTableHeader draws the shaded header row at y and returns the
// cursor below it.
func (e *Engine) renderTableHeader(cv canvas.Canvas, y float64) float64 {
	fill := canvas.HeaderFill
	stroke := canvas.Black
	cv.DrawRect(tableX, y, tableWidth, e.params.HeaderRowHeight,
		canvas.RectStyle{Fill: &fill, Stroke: &stroke, LineWidth: 1})

	label := canvas.TextStyle{Font: canvas.FontGothic, Size: 10, Color: canvas.Black}
	textY := y + 6
	cv.DrawText("品  名  ・  規  格", nameColX+rowTextPadX, textY, label)
	cv.DrawText("数  量", qtyColX, textY, label)
	cv.DrawText("単  価", priceColX, textY, label)
	cv.DrawText("金  額", amountColX, textY, label)

	return y + e.params.HeaderRowHeight
}

// renderSummary draws the subtotal / tax / grand total block and
// returns the cursor at its last row.
func (e *Engine) renderSummary(cv canvas.Canvas, doc *models.Document, y float64) float64 {
	p := e.params
	if y+p.SummaryHeight > p.RowOverflowLimit {
		cv.AddPage()
		y = p.NewPageTop
	}
	y += 20

	row := canvas.TextStyle{Font: canvas.FontGothic, Size: 10, Color: canvas.Black}
	rule := canvas.LineStyle{Width: 0.5, Color: canvas.Black}

	cv.DrawText("小  計", summaryLabelX, y, row)
	cv.DrawText(e.yen(doc.Subtotal), summaryAmountX, y, row)
	cv.DrawLine(summaryBoxX, y+15, tableRight, y+15, rule)
	y += 25

	cv.DrawText("消費税 (10%)", summaryLabelX, y, row)
	cv.DrawText(e.yen(doc.Tax), summaryAmountX, y, row)
	cv.DrawLine(summaryBoxX, y+15, tableRight, y+15, rule)
	y += 25

	total := canvas.TextStyle{Font: canvas.FontMincho, Size: 12, Color: canvas.Black}
	cv.DrawText("合  計", summaryLabelX, y+5, total)
	cv.DrawText(e.yen(doc.GrandTotal), summaryAmountX, y+5, total)
	cv.DrawLine(summaryBoxX, y+25, tableRight, y+25, rule)
	cv.DrawLine(summaryBoxX, y+28, tableRight, y+28, rule)

	return y
}

// renderRemarks draws the remarks box, breaking to a new page when the
// box would not fit below the summary.
func (e *Engine) renderRemarks(cv canvas.Canvas, doc *models.Document, y float64) {
	p := e.params
	if y+p.RemarksHeight > p.RemarksLimit {
		cv.AddPage()
		y = p.NewPageTop
	} else {
		y += 40
	}

	stroke := canvas.Black
	cv.DrawRect(tableX, y, tableWidth, remarksBoxH, canvas.RectStyle{Stroke: &stroke, LineWidth: 0.5})
	cv.DrawText("備  考", 50, y+5, canvas.TextStyle{Font: canvas.FontGothic, Size: 9, Color: canvas.Black})

	style := canvas.TextStyle{Font: canvas.FontGothic, Size: 9, Color: canvas.Black, Width: 495}
	if doc.RemarksDefaulted {
		// Boilerplate defaults render smaller and muted.
		style.Size = 8
		style.Color = canvas.MutedGray
	}
	cv.DrawText(doc.Remarks, 50, y+20, style)
}

// quantityText formats the quantity column: lump-sum style units
// always display as "1 式".
func (e *Engine) quantityText(entry models.Entry) string {
	if entry.Unit == "式" || entry.Unit == "%" {
		return "1 式"
	}
	return e.formatQuantity(entry.Quantity) + " " + entry.Unit
}

// formatQuantity prints whole quantities with ja-JP digit grouping and
// fractional ones verbatim.
func (e *Engine) formatQuantity(q float64) string {
	if q == math.Trunc(q) {
		return e.printer.Sprintf("%d", int64(q))
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// yen formats an amount as "¥ 1,234,567".
func (e *Engine) yen(n int64) string {
	return e.printer.Sprintf("¥ %d", n)
}
