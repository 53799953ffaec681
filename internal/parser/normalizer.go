package parser

import "strings"

// Normalize canonicalizes one raw input line before structural
// parsing: ideographic and full-width commas become ASCII commas, and
// full-width digits (U+FF10..U+FF19) become ASCII digits. Everything
// else passes through unchanged.
//
// x/text's width.Narrow is deliberately not used here: it would also
// fold katakana and full-width letters, which must survive untouched
// in item names.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '、' || r == '，':
			return ','
		case r >= '０' && r <= '９':
			return r - 0xFEE0
		default:
			return r
		}
	}, raw)
}
