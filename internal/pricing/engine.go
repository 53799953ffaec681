// Package pricing turns parsed line items into final priced entries
// and document-level totals.
package pricing

import (
	"math"

	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

// Rates fixed by local business-document convention.
const (
	// welfareLevyPermille is the statutory welfare levy rate, 16.5%,
	// expressed in permille for exact integer arithmetic.
	welfareLevyPermille = 165
	// taxPercent is the consumption tax applied to the whole document.
	taxPercent = 10
)

// Price applies the two-pass pricing algorithm.
//
// Pass 1 prices standard items (quantity * unit price, floored) and
// accumulates the taxable subtotal over exactly those entries. Pass 2
// prices the derived categories against that base: surcharge and levy
// rates apply only to ordinary goods and services, never to each other
// or to themselves, so a submission containing both cannot compound.
// Standard entries come first in input order, derived entries follow
// in their own original order.
//
// A submission with no standard lines yields a zero taxable subtotal
// and zero-amount derived entries; that is accepted, not an error.
func Price(items []models.LineItem) models.PricedResult {
	entries := make([]models.Entry, 0, len(items))

	var taxableSubtotal int64
	for _, item := range items {
		if item.Category != models.CategoryStandard {
			continue
		}
		amount := int64(math.Floor(item.Quantity * float64(item.UnitPrice)))
		taxableSubtotal += amount
		entries = append(entries, models.Entry{LineItem: item, Amount: amount})
	}

	for _, item := range items {
		switch item.Category {
		case models.CategoryPercentageSurcharge:
			amount := int64(math.Floor(float64(taxableSubtotal) * item.Quantity / 100))
			item.UnitPrice = 0
			entries = append(entries, models.Entry{
				LineItem:        item,
				Amount:          amount,
				QuantityHidden:  true,
				UnitPriceHidden: true,
			})
		case models.CategoryWelfareLevy:
			amount := taxableSubtotal * welfareLevyPermille / 1000
			// The unit-price column, if it were shown, echoes the
			// rate-applied value.
			item.Quantity = 1
			item.Unit = "式"
			item.UnitPrice = amount
			entries = append(entries, models.Entry{
				LineItem:        item,
				Amount:          amount,
				QuantityHidden:  true,
				UnitPriceHidden: true,
			})
		}
	}

	var subtotal int64
	for _, e := range entries {
		subtotal += e.Amount
	}
	tax := subtotal * taxPercent / 100

	return models.PricedResult{
		Entries:    entries,
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}
