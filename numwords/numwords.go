// Package numwords spells integers and currency amounts as words.
//
// Conversion is language-agnostic: a number is split into groups of at
// most three digits at the exponents the language's scale table defines,
// each group is rendered by the language's own rules, its scale word is
// inflected for the group value, and the pieces are joined with the
// language's separators. Languages are plain values implementing
// Language; see the lang/hu and lang/de packages.
//
//   - ToWords, ToWordsBig and ToWordsDigits spell a signed integer.
//   - ToCurrencyWords, ToCurrencyWordsMinor and ToCurrencyWordsDecimal
//     spell an amount followed by the currency's unit names.
//   - RenderGroup spells a single group with its scale word.
//
// Numbers are handled as digit strings, so magnitude is limited only by
// the language's scale table, never by machine integer width.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - A currency name with a single stored form is pluralized by
//     appending the table's plural suffix. This is an approximation, not
//     a grammatical pluralizer.
//   - Count words before a currency unit do not agree in gender with the
//     unit noun.
package numwords

import (
	"math/big"
	"strconv"
)

// ToWords returns the words for n in lang.
// Zero returns the language's zero word; negative numbers are prefixed
// with its minus word.
func ToWords(lang Language, n int64) (string, error) {
	negative, digits := splitSign(strconv.FormatInt(n, 10))
	return spell(lang, negative, digits, Standalone)
}

// ToWordsBig returns the words for n in lang. A nil n is an
// ErrInvalidNumber.
func ToWordsBig(lang Language, n *big.Int) (string, error) {
	if n == nil {
		return "", ErrInvalidNumber
	}
	negative, digits := splitSign(n.Text(10))
	return spell(lang, negative, digits, Standalone)
}

// ToWordsDigits returns the words for a decimal digit string with an
// optional leading sign, such as "-1200" or "000042".
// Anything else is an ErrInvalidNumber; whitespace is not trimmed.
func ToWordsDigits(lang Language, s string) (string, error) {
	negative, digits := splitSign(s)
	return spell(lang, negative, digits, Standalone)
}

// RenderGroup returns the words for one group value in [0, 999] at the
// given exponent, followed by its inflected scale word.
// Zero renders as "". It reports false when the exponent has no scale
// word, leaving the caller to decide whether an unscaled group is
// acceptable.
func RenderGroup(lang Language, value, exponent int, mode Mode) (string, bool) {
	if value < 0 || value > 999 {
		return "", false
	}
	return renderGroup(lang, value, exponent, mode)
}
