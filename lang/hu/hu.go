// Package hu spells numbers and currency amounts in Hungarian.
//
// Hungarian writes the words of a number as one compound: "háromszáz"
// (300), "tizenöt" (15), "egyezerötszáz" (1500). Ten and twenty have
// distinct prefix forms when a unit follows ("tíz"/"tizen",
// "húsz"/"huszon"). Numbers greater than 2000 separate their groups with
// a hyphen: "kettőezer-egy" (2001).
//
// The digit two is always "kettő", including before a scale word. Most
// currency unit names are English and are pluralized with an "s" suffix
// where no plural is stored.
package hu

import (
	"golang.org/x/text/language"

	"github.com/az-ai-labs/numwords/data"
	"github.com/az-ai-labs/numwords/numwords"
)

const (
	wordHundred = "száz"

	// groupThreshold is the largest number written without hyphens
	// between its groups.
	groupThreshold = 2000
)

// tensForm holds the word for an exact multiple of ten and the prefix
// used when a unit follows.
type tensForm struct {
	exact  string
	prefix string
}

// tens is indexed by tens digit (1–9); index 0 is unused.
var tens = [10]tensForm{
	{},
	{exact: "tíz", prefix: "tizen"},
	{exact: "húsz", prefix: "huszon"},
	{exact: "harminc", prefix: "harminc"},
	{exact: "negyven", prefix: "negyven"},
	{exact: "ötven", prefix: "ötven"},
	{exact: "hatvan", prefix: "hatvan"},
	{exact: "hetven", prefix: "hetven"},
	{exact: "nyolcvan", prefix: "nyolcvan"},
	{exact: "kilencven", prefix: "kilencven"},
}

var scales = numwords.ScaleTable{
	3:  {Forms: []string{"ezer"}},
	6:  {Forms: []string{"millió"}},
	9:  {Forms: []string{"milliárd"}},
	12: {Forms: []string{"billió"}},
	15: {Forms: []string{"billiárd"}},
	18: {Forms: []string{"trillió"}},
	21: {Forms: []string{"trilliárd"}},
	24: {Forms: []string{"kvadrillió"}},
	27: {Forms: []string{"kvadrilliárd"}},
	30: {Forms: []string{"kvintillió"}},
	33: {Forms: []string{"kvintilliárd"}},
	36: {Forms: []string{"szextillió"}},
	39: {Forms: []string{"szextilliárd"}},
	42: {Forms: []string{"szeptillió"}},
	45: {Forms: []string{"szeptilliárd"}},
	48: {Forms: []string{"oktillió"}},
	51: {Forms: []string{"oktilliárd"}},
	54: {Forms: []string{"nonillió"}},
	57: {Forms: []string{"nonilliárd"}},
	60: {Forms: []string{"decillió"}},
	63: {Forms: []string{"decilliárd"}},
}

var lexicon = &numwords.Lexicon{
	Digits: numwords.DigitTable{
		"nulla",
		"egy",
		"kettő",
		"három",
		"négy",
		"öt",
		"hat",
		"hét",
		"nyolc",
		"kilenc",
	},
	Zero:   "nulla",
	Minus:  "mínusz",
	Scales: scales,
	Separators: numwords.Separators{
		Word:           "",
		Scale:          "",
		Group:          "-",
		Sign:           " ",
		GroupThreshold: groupThreshold,
	},
}

// Parsed currency table, populated by init().
var currencies *numwords.CurrencyTable

func init() {
	t, err := numwords.LoadCurrencyTable(data.CurrencyHU)
	if err != nil {
		panic("hu: " + err.Error())
	}
	currencies = t
}

type hungarian struct{}

// Language returns the Hungarian language. The returned value and its
// tables are shared and must not be modified.
func Language() numwords.Language {
	return hungarian{}
}

func (hungarian) Tag() language.Tag { return language.Hungarian }

func (hungarian) Name() string { return "Hungarian" }

func (hungarian) Lexicon() *numwords.Lexicon { return lexicon }

func (hungarian) Currencies() *numwords.CurrencyTable { return currencies }

// GroupWords renders hundreds, tens and units in that order. A unit
// after ten or twenty switches the tens word to its prefix form.
func (hungarian) GroupWords(value, _ int, _ numwords.Mode) []string {
	h := value / 100
	t := value / 10 % 10
	d := value % 10

	words := make([]string, 0, 4)
	if h > 0 {
		words = append(words, lexicon.Digits[h], wordHundred)
	}
	if t > 0 {
		if d == 0 {
			words = append(words, tens[t].exact)
		} else {
			words = append(words, tens[t].prefix)
		}
	}
	if d > 0 {
		words = append(words, lexicon.Digits[d])
	}
	return words
}

// ScaleWord returns the single form stored for exponent; Hungarian scale
// words do not inflect after a number.
func (hungarian) ScaleWord(_, exponent int) (string, bool) {
	return scales.Invariant(exponent)
}
