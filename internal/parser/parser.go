package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kaito5551995/slack-estimate-bot/internal/models"
)

const (
	welfareLevyName = "法定福利費"
	surchargeName   = "諸経費"
	lumpSumToken    = "一式"
	lumpSumUnit     = "式"
)

var (
	fieldSeparator = regexp.MustCompile(`[,，\t]+`)
	leadingNumber  = regexp.MustCompile(`^([\d.]+)(.*)$`)
	leadingDigits  = regexp.MustCompile(`^\d+`)
)

// ParseItems interprets newline-separated raw item text into line
// items, one per non-empty line, in input order. Lines whose name
// field is empty are dropped. Malformed quantity or price tokens
// degrade to zero values; parsing itself never fails. The caller is
// responsible for rejecting an entirely empty result.
func ParseItems(text string) []models.LineItem {
	var items []models.LineItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if item, ok := parseLine(Normalize(line)); ok {
			items = append(items, item)
		}
	}
	return items
}

// parseLine converts one normalized line into a LineItem. The second
// return value is false when the line carries no item name.
func parseLine(line string) (models.LineItem, bool) {
	fields := fieldSeparator.Split(line, -1)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	name := fields[0]
	if name == "" {
		return models.LineItem{}, false
	}

	quantityText := "0"
	if len(fields) > 1 && fields[1] != "" {
		quantityText = fields[1]
	}

	item := models.LineItem{
		Name:            name,
		RawQuantityText: quantityText,
		UnitPrice:       parseUnitPrice(fields),
	}

	// Name-driven overrides take precedence over the literal form of
	// the quantity token; the welfare levy check runs first.
	switch {
	case strings.Contains(name, welfareLevyName):
		item.Name = welfareLevyName
		item.Category = models.CategoryWelfareLevy
		item.Quantity = 1
		item.Unit = lumpSumUnit
		// The real price is derived from the taxable subtotal later.
		item.UnitPrice = 0
	case strings.Contains(name, surchargeName) && isPercentageToken(quantityText):
		item.Name = surchargeName
		item.Category = models.CategoryPercentageSurcharge
		item.Quantity, _ = strconv.ParseFloat(strings.TrimSuffix(quantityText, "%"), 64)
		item.Unit = "%"
	default:
		item.Quantity, item.Unit = parseQuantity(quantityText)
	}

	return item, true
}

// parseQuantity resolves the quantity token: the fixed lump-sum idiom,
// or a leading decimal number with an arbitrary trailing unit label.
// Tokens without a leading number yield quantity 0 and no unit.
func parseQuantity(token string) (float64, string) {
	if token == lumpSumToken {
		return 1, lumpSumUnit
	}
	m := leadingNumber.FindStringSubmatch(token)
	if m == nil {
		return 0, ""
	}
	q, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ""
	}
	return q, strings.TrimSpace(m[2])
}

// parseUnitPrice reads the third field as a non-negative integer yen
// price, accepting trailing junk after the digits ("3500円" -> 3500).
func parseUnitPrice(fields []string) int64 {
	if len(fields) < 3 {
		return 0
	}
	digits := leadingDigits.FindString(fields[2])
	if digits == "" {
		return 0
	}
	price, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return price
}

// isPercentageToken reports whether the token is a bare number or a
// number followed by "%", the only forms a surcharge rate may take.
func isPercentageToken(token string) bool {
	trimmed := strings.TrimSuffix(token, "%")
	if trimmed == "" {
		return false
	}
	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}
