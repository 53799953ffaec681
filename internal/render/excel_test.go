package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

func invoiceFixture() *models.Document {
	return &models.Document{
		Type:          models.TypeInvoice,
		ClientCompany: "株式会社テスト商事",
		ClientPerson:  "山田太郎",
		Entries: []models.Entry{
			{
				LineItem: models.LineItem{Name: "コーン標識（赤白）", Quantity: 10, Unit: "個", UnitPrice: 3500},
				Amount:   35000,
			},
			{
				LineItem:        models.LineItem{Name: "諸経費", Quantity: 7, Unit: "%", Category: models.CategoryPercentageSurcharge},
				Amount:          2450,
				QuantityHidden:  true,
				UnitPriceHidden: true,
			},
		},
		Subtotal:   37450,
		Tax:        3745,
		GrandTotal: 41195,
		Remarks:    "月末締め翌月払い",
		IssuedOn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestExcelRendererRender(t *testing.T) {
	r := NewExcelRenderer("株式会社ミナト安全施設", zap.NewNop())

	data, err := r.Render(invoiceFixture())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "請求書", get("A1"))
	assert.Equal(t, "2024-06-01", get("A2"))
	assert.Equal(t, "株式会社テスト商事 御中", get("A3"))
	assert.Equal(t, "山田太郎 様", get("A4"))
	assert.Equal(t, "株式会社ミナト安全施設", get("D3"))

	assert.Equal(t, "品名・規格", get("A6"))
	assert.Equal(t, "数量", get("B6"))

	// Standard row shows all four columns.
	assert.Equal(t, "コーン標識（赤白）", get("A7"))
	assert.Equal(t, "10 個", get("B7"))
	assert.Equal(t, "3500", get("C7"))
	assert.Equal(t, "35000", get("D7"))

	// Derived row shows only the name and amount.
	assert.Equal(t, "諸経費", get("A8"))
	assert.Equal(t, "", get("B8"))
	assert.Equal(t, "", get("C8"))
	assert.Equal(t, "2450", get("D8"))

	assert.Equal(t, "小計", get("C10"))
	assert.Equal(t, "37450", get("D10"))
	assert.Equal(t, "消費税 (10%)", get("C11"))
	assert.Equal(t, "3745", get("D11"))
	assert.Equal(t, "合計", get("C12"))
	assert.Equal(t, "41195", get("D12"))

	assert.Equal(t, "備考", get("A14"))
	assert.Equal(t, "月末締め翌月払い", get("A15"))
}

func TestExcelQuantityText(t *testing.T) {
	assert.Equal(t, "1 式",
		quantityText(models.Entry{LineItem: models.LineItem{Quantity: 1, Unit: "式"}}))
	assert.Equal(t, "1 式",
		quantityText(models.Entry{LineItem: models.LineItem{Quantity: 16.5, Unit: "%"}}))
	assert.Equal(t, "2.5 t",
		quantityText(models.Entry{LineItem: models.LineItem{Quantity: 2.5, Unit: "t"}}))
}
