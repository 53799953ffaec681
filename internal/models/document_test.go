package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		input   string
		want    DocumentType
		wantErr bool
	}{
		{"estimate", TypeQuotation, false},
		{"", TypeQuotation, false},
		{"invoice", TypeInvoice, false},
		{"receipt", TypeReceipt, false},
		{"purchase_order", TypeQuotation, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseDocumentType(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDocumentTypeText(t *testing.T) {
	tests := []struct {
		typ         DocumentType
		title       string
		amountLabel string
		displayName string
		filePrefix  string
	}{
		{TypeQuotation, "御 見 積 書", "御見積金額", "見積書", "Estimate"},
		{TypeInvoice, "御 請 求 書", "御請求金額", "請求書", "Invoice"},
		{TypeReceipt, "領  収  書", "領収金額", "領収書", "Receipt"},
	}

	for _, tt := range tests {
		t.Run(tt.filePrefix, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.typ.Title())
			assert.Equal(t, tt.amountLabel, tt.typ.AmountLabel())
			assert.Equal(t, tt.displayName, tt.typ.DisplayName())
			assert.Equal(t, tt.filePrefix, tt.typ.FilePrefix())
			assert.NotEmpty(t, tt.typ.Greeting())
			assert.NotEmpty(t, tt.typ.DefaultRemarks())
		})
	}
}

func TestCategoryDerived(t *testing.T) {
	assert.False(t, CategoryStandard.Derived())
	assert.True(t, CategoryPercentageSurcharge.Derived())
	assert.True(t, CategoryWelfareLevy.Derived())
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "standard", CategoryStandard.String())
	assert.Equal(t, "percentage_surcharge", CategoryPercentageSurcharge.String())
	assert.Equal(t, "welfare_levy", CategoryWelfareLevy.String())
}
