package models

// Category classifies a line item by how its amount is computed.
type Category int

const (
	// CategoryStandard amounts are quantity * unit price.
	CategoryStandard Category = iota
	// CategoryPercentageSurcharge (諸経費) amounts are a percentage of the
	// taxable subtotal of standard items.
	CategoryPercentageSurcharge
	// CategoryWelfareLevy (法定福利費) amounts are a fixed 16.5% of the
	// taxable subtotal.
	CategoryWelfareLevy
)

// String returns a short label for logging.
func (c Category) String() string {
	switch c {
	case CategoryPercentageSurcharge:
		return "percentage_surcharge"
	case CategoryWelfareLevy:
		return "welfare_levy"
	default:
		return "standard"
	}
}

// Derived reports whether the item's amount depends on the taxable
// subtotal rather than on its own quantity and unit price.
func (c Category) Derived() bool {
	return c == CategoryPercentageSurcharge || c == CategoryWelfareLevy
}

// LineItem is one parsed, not yet priced, line of user input.
type LineItem struct {
	Name            string   `json:"name"`
	RawQuantityText string   `json:"raw_quantity_text"` // original token, kept for display/debug
	Quantity        float64  `json:"quantity"`
	Unit            string   `json:"unit"`
	UnitPrice       int64    `json:"unit_price"`
	Category        Category `json:"category"`
}

// Entry is a priced line item, the unit of table rendering.
// Amount is always a non-negative integer in yen; fractional currency
// never appears downstream of pricing.
type Entry struct {
	LineItem
	Amount          int64 `json:"amount"`
	QuantityHidden  bool  `json:"quantity_hidden"`
	UnitPriceHidden bool  `json:"unit_price_hidden"`
}

// PricedResult is the output of the pricing engine: final entries in
// render order plus the document-level totals.
type PricedResult struct {
	Entries    []Entry `json:"entries"`
	Subtotal   int64   `json:"subtotal"`
	Tax        int64   `json:"tax"`
	GrandTotal int64   `json:"grand_total"`
}
