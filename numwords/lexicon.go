// Lexicon types shared by every language.
package numwords

import (
	"maps"
	"slices"

	"github.com/bobg/errors"
	"golang.org/x/text/language"
)

// Mode selects the form of a number that depends on what follows it.
type Mode int

const (
	// Standalone is the form of a number read on its own (German "eins").
	Standalone Mode = iota

	// Attributive is the form of a number counting a following noun,
	// such as a currency unit (German "ein Euro").
	Attributive
)

// Language supplies the tables and grammar rules for one natural language.
//
// Implementations must be immutable: the converter calls them from any
// number of goroutines without locking.
type Language interface {
	// Tag identifies the language; it drives CLDR plural selection.
	Tag() language.Tag

	// Name is the English name used in error messages.
	Name() string

	// Lexicon returns the digit, scale and separator tables.
	Lexicon() *Lexicon

	// GroupWords renders a group value in [1, 999] as sub-words, to be
	// joined with Separators.Word. The exponent tells the rule which
	// scale word, if any, follows the group.
	GroupWords(value, exponent int, mode Mode) []string

	// ScaleWord returns the scale word for a group with the given value
	// and exponent, inflected for the value. It reports false when the
	// exponent has no entry.
	ScaleWord(value, exponent int) (string, bool)

	// Currencies returns the currency-name table. It may be nil.
	Currencies() *CurrencyTable
}

// DigitTable holds the names of the digits 0–9, indexed by digit.
type DigitTable [10]string

// Scale is the entry of one power of ten in a ScaleTable.
type Scale struct {
	// Forms lists the inflected forms of the scale word. Their meaning
	// is up to the language's ScaleWord rule; index 0 is the singular.
	Forms []string

	// Compound scale words are written together with their group and
	// with the group that follows (German "zweitausendeins").
	Compound bool
}

// ScaleTable maps a power-of-ten exponent (a positive multiple of 3) to
// its scale entry. Exponent 0 is implicit and names nothing.
type ScaleTable map[int]Scale

// Exponents returns the defined exponents in ascending order, starting
// with 0.
func (t ScaleTable) Exponents() []int {
	exps := slices.Sorted(maps.Keys(t))
	if len(exps) == 0 || exps[0] != 0 {
		exps = slices.Insert(exps, 0, 0)
	}
	return exps
}

// Form returns form index of the scale word for exponent. An index past
// the stored forms yields the last form. Exponent 0 yields "".
func (t ScaleTable) Form(exponent, index int) (string, bool) {
	if exponent == 0 {
		return "", true
	}
	s, ok := t[exponent]
	if !ok || len(s.Forms) == 0 {
		return "", false
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.Forms) {
		index = len(s.Forms) - 1
	}
	return s.Forms[index], true
}

// Invariant is the scale rule for languages with one form per exponent.
func (t ScaleTable) Invariant(exponent int) (string, bool) {
	return t.Form(exponent, 0)
}

// SingularPlural is the scale rule for languages that use Forms[0] after
// a group value of one and Forms[1] after any other value.
func (t ScaleTable) SingularPlural(value, exponent int) (string, bool) {
	if value == 1 {
		return t.Form(exponent, 0)
	}
	return t.Form(exponent, 1)
}

// Separators are the strings placed between the parts of a rendering.
type Separators struct {
	Word  string // between sub-words of one group
	Scale string // between a group and its non-compound scale word
	Group string // between adjacent rendered groups
	Sign  string // between the minus word and the number

	// GroupThreshold restricts Group to numbers greater than it; smaller
	// numbers join their groups with Word. Zero means Group is always
	// used.
	GroupThreshold int64
}

// Lexicon is the static configuration of one language.
type Lexicon struct {
	Digits     DigitTable
	Zero       string
	Minus      string
	Scales     ScaleTable
	Separators Separators
}

// Validate checks the table invariants: every digit is named, the zero
// and minus words are set, and every scale exponent is a positive
// multiple of 3 with at least one non-empty form.
func (l *Lexicon) Validate() error {
	for i, d := range l.Digits {
		if d == "" {
			return errors.Wrapf(ErrInvalidLexicon, "digit %d has no name", i)
		}
	}
	if l.Zero == "" {
		return errors.Wrap(ErrInvalidLexicon, "zero word is empty")
	}
	if l.Minus == "" {
		return errors.Wrap(ErrInvalidLexicon, "minus word is empty")
	}
	for exp, s := range l.Scales {
		if exp <= 0 || exp%3 != 0 {
			return errors.Wrapf(ErrInvalidLexicon, "scale exponent %d is not a positive multiple of 3", exp)
		}
		if len(s.Forms) == 0 {
			return errors.Wrapf(ErrInvalidLexicon, "scale exponent %d has no forms", exp)
		}
		for _, f := range s.Forms {
			if f == "" {
				return errors.Wrapf(ErrInvalidLexicon, "scale exponent %d has an empty form", exp)
			}
		}
	}
	return nil
}

// MaxDigits returns the length of the longest number the scale table
// can name.
func (l *Lexicon) MaxDigits() int {
	exps := l.Scales.Exponents()
	return exps[len(exps)-1] + 3
}
