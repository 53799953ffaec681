// Package render holds alternative output formats for a built
// document. The PDF path lives in layout/canvas; this package covers
// the spreadsheet export used by back-office workflows.
package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

// ExcelRenderer writes a document to a single-sheet .xlsx workbook.
type ExcelRenderer struct {
	issuerName string
	logger     *zap.Logger
}

// NewExcelRenderer creates an Excel renderer stamped with the issuer
// name.
func NewExcelRenderer(issuerName string, logger *zap.Logger) *ExcelRenderer {
	return &ExcelRenderer{issuerName: issuerName, logger: logger}
}

// Render produces the workbook bytes for doc.
func (r *ExcelRenderer) Render(doc *models.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	r.setCell(f, sheet, "A1", doc.Type.DisplayName())
	r.setCell(f, sheet, "A2", doc.IssuedOn.Format("2006-01-02"))
	r.setCell(f, sheet, "A3", doc.ClientCompany+" 御中")
	r.setCell(f, sheet, "A4", doc.ClientPerson+" 様")
	r.setCell(f, sheet, "D3", r.issuerName)

	// Item table header.
	r.setCell(f, sheet, "A6", "品名・規格")
	r.setCell(f, sheet, "B6", "数量")
	r.setCell(f, sheet, "C6", "単価")
	r.setCell(f, sheet, "D6", "金額")

	row := 7
	for _, entry := range doc.Entries {
		r.setCell(f, sheet, fmt.Sprintf("A%d", row), entry.Name)
		// Derived categories show only their amount, same as the PDF.
		if !entry.QuantityHidden {
			r.setCell(f, sheet, fmt.Sprintf("B%d", row), quantityText(entry))
		}
		if !entry.UnitPriceHidden {
			r.setCell(f, sheet, fmt.Sprintf("C%d", row), entry.UnitPrice)
		}
		r.setCell(f, sheet, fmt.Sprintf("D%d", row), entry.Amount)
		row++
	}

	row++
	r.setCell(f, sheet, fmt.Sprintf("C%d", row), "小計")
	r.setCell(f, sheet, fmt.Sprintf("D%d", row), doc.Subtotal)
	row++
	r.setCell(f, sheet, fmt.Sprintf("C%d", row), "消費税 (10%)")
	r.setCell(f, sheet, fmt.Sprintf("D%d", row), doc.Tax)
	row++
	r.setCell(f, sheet, fmt.Sprintf("C%d", row), "合計")
	r.setCell(f, sheet, fmt.Sprintf("D%d", row), doc.GrandTotal)

	row += 2
	r.setCell(f, sheet, fmt.Sprintf("A%d", row), "備考")
	r.setCell(f, sheet, fmt.Sprintf("A%d", row+1), doc.Remarks)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// setCell sets a cell value, logging and continuing on failure.
func (r *ExcelRenderer) setCell(f *excelize.File, sheet, cell string, value interface{}) {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		r.logger.Warn("failed to set cell value",
			zap.String("sheet", sheet),
			zap.String("cell", cell),
			zap.Error(err))
	}
}

// quantityText mirrors the PDF quantity column: lump-sum style units
// display as "1 式".
func quantityText(entry models.Entry) string {
	if entry.Unit == "式" || entry.Unit == "%" {
		return "1 式"
	}
	return fmt.Sprintf("%v %s", entry.Quantity, entry.Unit)
}
