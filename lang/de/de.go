// Package de spells numbers and currency amounts in German.
//
// Everything below one million is written as one word, with the unit
// before the tens: "dreihundertfünfundvierzig" (345),
// "zweitausendeins" (2001). From Million upwards the scale words are
// nouns written apart and inflected for number: "eine Million",
// "zwei Millionen drei". The unit one is "eins" at the end of a number,
// "eine" before a feminine scale noun and "ein" elsewhere, including
// before a currency unit.
package de

import (
	"golang.org/x/text/language"

	"github.com/az-ai-labs/numwords/data"
	"github.com/az-ai-labs/numwords/numwords"
)

const (
	wordHundred = "hundert"
	wordAnd     = "und"
	stemOne     = "ein"
	feminineOne = "eine"
)

// teens is indexed by units digit for 10–19.
var teens = [10]string{
	"zehn",
	"elf",
	"zwölf",
	"dreizehn",
	"vierzehn",
	"fünfzehn",
	"sechzehn",
	"siebzehn",
	"achtzehn",
	"neunzehn",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"zwanzig",
	"dreißig",
	"vierzig",
	"fünfzig",
	"sechzig",
	"siebzig",
	"achtzig",
	"neunzig",
}

var scales = numwords.ScaleTable{
	3:  {Forms: []string{"tausend"}, Compound: true},
	6:  {Forms: []string{"Million", "Millionen"}},
	9:  {Forms: []string{"Milliarde", "Milliarden"}},
	12: {Forms: []string{"Billion", "Billionen"}},
	15: {Forms: []string{"Billiarde", "Billiarden"}},
	18: {Forms: []string{"Trillion", "Trillionen"}},
	21: {Forms: []string{"Trilliarde", "Trilliarden"}},
	24: {Forms: []string{"Quadrillion", "Quadrillionen"}},
	27: {Forms: []string{"Quadrilliarde", "Quadrilliarden"}},
	30: {Forms: []string{"Quintillion", "Quintillionen"}},
	33: {Forms: []string{"Quintilliarde", "Quintilliarden"}},
	36: {Forms: []string{"Sextillion", "Sextillionen"}},
	39: {Forms: []string{"Sextilliarde", "Sextilliarden"}},
	42: {Forms: []string{"Septillion", "Septillionen"}},
	45: {Forms: []string{"Septilliarde", "Septilliarden"}},
	48: {Forms: []string{"Oktillion", "Oktillionen"}},
	51: {Forms: []string{"Oktilliarde", "Oktilliarden"}},
	54: {Forms: []string{"Nonillion", "Nonillionen"}},
	57: {Forms: []string{"Nonilliarde", "Nonilliarden"}},
	60: {Forms: []string{"Dezillion", "Dezillionen"}},
	63: {Forms: []string{"Dezilliarde", "Dezilliarden"}},
}

var lexicon = &numwords.Lexicon{
	Digits: numwords.DigitTable{
		"null",
		"eins",
		"zwei",
		"drei",
		"vier",
		"fünf",
		"sechs",
		"sieben",
		"acht",
		"neun",
	},
	Zero:   "null",
	Minus:  "minus",
	Scales: scales,
	Separators: numwords.Separators{
		Word:  "",
		Scale: " ",
		Group: " ",
		Sign:  " ",
	},
}

// Parsed currency table, populated by init().
var currencies *numwords.CurrencyTable

func init() {
	t, err := numwords.LoadCurrencyTable(data.CurrencyDE)
	if err != nil {
		panic("de: " + err.Error())
	}
	currencies = t
}

type german struct{}

// Language returns the German language. The returned value and its
// tables are shared and must not be modified.
func Language() numwords.Language {
	return german{}
}

func (german) Tag() language.Tag { return language.German }

func (german) Name() string { return "German" }

func (german) Lexicon() *numwords.Lexicon { return lexicon }

func (german) Currencies() *numwords.CurrencyTable { return currencies }

// GroupWords renders the hundreds, then either a teen, a lone unit, or
// a unit joined to its tens with "und".
func (german) GroupWords(value, exponent int, mode numwords.Mode) []string {
	h := value / 100
	r := value % 100
	t := r / 10
	d := r % 10

	words := make([]string, 0, 5)
	if h > 0 {
		words = append(words, unitStem(h), wordHundred)
	}

	switch {
	case r == 0:
	case t == 0:
		words = append(words, finalUnit(value, d, exponent, mode))
	case t == 1:
		words = append(words, teens[d])
	default:
		if d > 0 {
			words = append(words, unitStem(d), wordAnd)
		}
		words = append(words, tens[t])
	}
	return words
}

// ScaleWord inflects "Million" and above for number; "tausend" has a
// single form.
func (german) ScaleWord(value, exponent int) (string, bool) {
	return scales.SingularPlural(value, exponent)
}

// unitStem returns a unit as it appears inside a compound.
func unitStem(d int) string {
	if d == 1 {
		return stemOne
	}
	return lexicon.Digits[d]
}

// finalUnit returns the last word of a group ending in a lone unit.
func finalUnit(value, d, exponent int, mode numwords.Mode) string {
	if d != 1 {
		return lexicon.Digits[d]
	}
	switch {
	case exponent == 0 && mode == numwords.Standalone:
		return lexicon.Digits[1]
	case exponent >= 6 && value == 1:
		return feminineOne
	default:
		return stemOne
	}
}
