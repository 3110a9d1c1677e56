// Currency formatting.
package numwords

import (
	"math/big"
	"slices"
	"strings"

	"github.com/bobg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

const (
	growCurrency = 128 // estimated bytes for an amount with both units

	// defaultMinorScale is used for codes x/text does not know.
	defaultMinorScale = 2

	// pluralCap bounds the integer handed to the CLDR rules. Values above
	// it keep their last six digits so modulo-based rules still apply.
	pluralCap = 1_000_000
)

// CurrencyEntry holds the unit names of one currency. Each list holds
// either a single form, pluralized with the table's suffix, or forms
// indexed by plural level: one, other, few, many.
type CurrencyEntry struct {
	Major []string `yaml:"major"`
	Minor []string `yaml:"minor"`
}

// CurrencyTable maps ISO 4217 codes to unit names. It is immutable once
// built.
type CurrencyTable struct {
	pluralSuffix string
	entries      map[string]CurrencyEntry
}

// currencyFile is the YAML layout read by LoadCurrencyTable.
type currencyFile struct {
	PluralSuffix string                   `yaml:"plural_suffix"`
	Currencies   map[string]CurrencyEntry `yaml:"currencies"`
}

// LoadCurrencyTable parses a YAML currency table:
//
//	plural_suffix: s
//	currencies:
//	  USD:
//	    major: [dollar]
//	    minor: [cent]
func LoadCurrencyTable(data []byte) (*CurrencyTable, error) {
	var f currencyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding currency table")
	}
	return NewCurrencyTable(f.PluralSuffix, f.Currencies)
}

// NewCurrencyTable builds a table from entries keyed by currency code.
// Codes must be three ASCII letters; they are stored upper-cased. Every
// entry needs at least one major name. Names are normalized to NFC.
func NewCurrencyTable(pluralSuffix string, entries map[string]CurrencyEntry) (*CurrencyTable, error) {
	t := &CurrencyTable{
		pluralSuffix: norm.NFC.String(pluralSuffix),
		entries:      make(map[string]CurrencyEntry, len(entries)),
	}
	for code, e := range entries {
		if !isCurrencyCode(code) {
			return nil, errors.Wrapf(ErrInvalidCurrencyTable, "code %q", code)
		}
		code = strings.ToUpper(code)
		if len(e.Major) == 0 {
			return nil, errors.Wrapf(ErrInvalidCurrencyTable, "%s has no major unit name", code)
		}
		major, err := normalizeNames(code, e.Major)
		if err != nil {
			return nil, err
		}
		minor, err := normalizeNames(code, e.Minor)
		if err != nil {
			return nil, err
		}
		t.entries[code] = CurrencyEntry{Major: major, Minor: minor}
	}
	return t, nil
}

func normalizeNames(code string, names []string) ([]string, error) {
	out := make([]string, len(names))
	for i, n := range names {
		n = norm.NFC.String(strings.TrimSpace(n))
		if n == "" {
			return nil, errors.Wrapf(ErrInvalidCurrencyTable, "%s has an empty unit name", code)
		}
		out[i] = n
	}
	return out, nil
}

// Lookup returns the entry for code, matched case-insensitively.
func (t *CurrencyTable) Lookup(code string) (CurrencyEntry, bool) {
	if t == nil {
		return CurrencyEntry{}, false
	}
	e, ok := t.entries[strings.ToUpper(code)]
	return e, ok
}

// Codes returns the known currency codes in sorted order.
func (t *CurrencyTable) Codes() []string {
	if t == nil {
		return nil
	}
	codes := make([]string, 0, len(t.entries))
	for c := range t.entries {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// PluralSuffix returns the suffix appended to single-form names.
func (t *CurrencyTable) PluralSuffix() string {
	if t == nil {
		return ""
	}
	return t.pluralSuffix
}

// unitName picks the form of a unit name for a plural level.
func (t *CurrencyTable) unitName(forms []string, level int) string {
	if len(forms) == 1 {
		if level == 0 {
			return forms[0]
		}
		return forms[0] + t.pluralSuffix
	}
	if level >= len(forms) {
		level = len(forms) - 1
	}
	return forms[level]
}

// ToCurrencyWords returns the words for major units of the currency
// code, followed by the major unit name.
func ToCurrencyWords(lang Language, code string, major int64) (string, error) {
	return currencyWords(lang, code, major < 0, absInt(major), nil)
}

// ToCurrencyWordsMinor returns the words for major and minor units of
// the currency code, each followed by its unit name. The minor amount
// must not be negative.
func ToCurrencyWordsMinor(lang Language, code string, major, minor int64) (string, error) {
	if minor < 0 {
		return "", errors.Wrapf(ErrInvalidNumber, "negative minor amount %d", minor)
	}
	return currencyWords(lang, code, major < 0, absInt(major), big.NewInt(minor))
}

// ToCurrencyWordsDecimal returns the words for a decimal amount of the
// currency code. The amount is rounded to the currency's standard number
// of minor digits; the minor part is spelled only when it is not zero.
// A negative amount carries the minus word on the major part.
func ToCurrencyWordsDecimal(lang Language, code string, amount decimal.Decimal) (string, error) {
	scale := minorScale(code)
	amount = amount.Round(int32(scale))

	negative := amount.Sign() < 0
	amount = amount.Abs()
	whole := amount.Truncate(0)

	var minor *big.Int
	if scale > 0 {
		if frac := amount.Sub(whole).Shift(int32(scale)); !frac.IsZero() {
			minor = frac.BigInt()
		}
	}

	return currencyWords(lang, code, negative, whole.BigInt(), minor)
}

// currencyWords renders "<major> <name>[ <minor> <name>]". major is the
// absolute value; minor is nil when omitted.
func currencyWords(lang Language, code string, negative bool, major, minor *big.Int) (string, error) {
	table := lang.Currencies()
	entry, ok := table.Lookup(code)
	if !ok {
		return "", &CurrencyError{Code: strings.ToUpper(code), Language: lang.Name()}
	}
	if minor != nil && len(entry.Minor) == 0 {
		return "", errors.Wrapf(ErrNoMinorUnit, "%s in %s", strings.ToUpper(code), lang.Name())
	}

	majorWords, err := spell(lang, negative, major.Text(10), Attributive)
	if err != nil {
		return "", err
	}
	if negative && major.Sign() == 0 && minor != nil {
		// -0.50: the sign still belongs in front of the amount.
		lex := lang.Lexicon()
		majorWords = lex.Minus + lex.Separators.Sign + majorWords
	}

	var b strings.Builder
	b.Grow(growCurrency)

	b.WriteString(majorWords)
	b.WriteByte(' ')
	b.WriteString(table.unitName(entry.Major, pluralLevel(lang.Tag(), major)))

	if minor != nil {
		minorWords, err := spell(lang, false, minor.Text(10), Attributive)
		if err != nil {
			return "", err
		}
		b.WriteByte(' ')
		b.WriteString(minorWords)
		b.WriteByte(' ')
		b.WriteString(table.unitName(entry.Minor, pluralLevel(lang.Tag(), minor)))
	}

	return b.String(), nil
}

// pluralLevel maps the CLDR cardinal plural form of a non-negative
// integer count to a name index: one 0, other 1, few 2, many 3.
func pluralLevel(tag language.Tag, count *big.Int) int {
	i := pluralCap
	if count.IsInt64() && count.Int64() < pluralCap {
		i = int(count.Int64())
	} else {
		var rem big.Int
		rem.Rem(count, big.NewInt(pluralCap))
		i += int(rem.Int64())
	}

	switch plural.Cardinal.MatchPlural(tag, i, 0, 0, 0, 0) {
	case plural.One:
		return 0
	case plural.Few:
		return 2
	case plural.Many:
		return 3
	default:
		return 1
	}
}

// minorScale returns the number of minor-unit digits of an ISO code.
func minorScale(code string) int {
	u, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return defaultMinorScale
	}
	scale, _ := currency.Standard.Rounding(u)
	return scale
}

func absInt(n int64) *big.Int {
	b := big.NewInt(n)
	return b.Abs(b)
}

// isCurrencyCode reports whether s is three ASCII letters.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
