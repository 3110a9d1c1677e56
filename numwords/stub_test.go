package numwords

import (
	"golang.org/x/text/language"
)

// english is a minimal language used to exercise the assembler without
// depending on the bundled languages.
type english struct {
	lex        *Lexicon
	currencies *CurrencyTable
	// noInflect lists exponents whose scale word the rule refuses.
	noInflect map[int]bool
}

var englishTens = [10]string{"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

var englishTeens = [10]string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}

func newEnglish() *english {
	table, err := NewCurrencyTable("s", map[string]CurrencyEntry{
		"USD": {Major: []string{"dollar"}, Minor: []string{"cent"}},
		"GBP": {Major: []string{"pound", "pounds"}, Minor: []string{"penny", "pence"}},
		"XTS": {Major: []string{"token"}},
	})
	if err != nil {
		panic(err)
	}
	return &english{
		lex: &Lexicon{
			Digits: DigitTable{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
			Zero:   "zero",
			Minus:  "minus",
			Scales: ScaleTable{
				3: {Forms: []string{"thousand"}},
				6: {Forms: []string{"million"}},
				9: {Forms: []string{"billion"}},
			},
			Separators: Separators{Word: " ", Scale: " ", Group: " ", Sign: " "},
		},
		currencies: table,
	}
}

func (*english) Tag() language.Tag { return language.English }
func (*english) Name() string { return "English" }
func (e *english) Lexicon() *Lexicon { return e.lex }
func (e *english) Currencies() *CurrencyTable { return e.currencies }

func (e *english) ScaleWord(_, exp int) (string, bool) {
	if e.noInflect[exp] {
		return "", false
	}
	return e.lex.Scales.Invariant(exp)
}

func (e *english) GroupWords(value, _ int, _ Mode) []string {
	h, r := value/100, value%100
	var words []string
	if h > 0 {
		words = append(words, e.lex.Digits[h], "hundred")
	}
	switch {
	case r == 0:
	case r < 10:
		words = append(words, e.lex.Digits[r])
	case r < 20:
		words = append(words, englishTeens[r-10])
	case r%10 == 0:
		words = append(words, englishTens[r/10])
	default:
		words = append(words, englishTens[r/10]+"-"+e.lex.Digits[r%10])
	}
	return words
}
