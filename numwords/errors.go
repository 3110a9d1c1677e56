package numwords

import (
	"fmt"

	"github.com/bobg/errors"
)

var (
	// ErrUnsupportedMagnitude indicates a number whose highest group lies
	// beyond the language's scale table.
	ErrUnsupportedMagnitude = errors.New("numwords: unsupported magnitude")

	// ErrUnsupportedScaleExponent indicates a group whose exponent has no
	// scale word in the language. RenderGroup reports it as ok == false;
	// the whole-number functions return a *ScaleError, which also matches
	// ErrUnsupportedMagnitude.
	ErrUnsupportedScaleExponent = errors.New("numwords: unsupported scale exponent")

	// ErrUnsupportedCurrency indicates a currency code missing from the
	// language's currency table. The concrete error is a *CurrencyError.
	ErrUnsupportedCurrency = errors.New("numwords: unsupported currency")

	// ErrInvalidNumber indicates malformed numeric input: a nil big.Int,
	// a digit string with stray characters, or a negative minor amount.
	ErrInvalidNumber = errors.New("numwords: invalid number")

	// ErrNoMinorUnit indicates a minor amount for a currency whose table
	// entry defines no minor-unit names.
	ErrNoMinorUnit = errors.New("numwords: currency has no minor unit")

	// ErrInvalidLexicon indicates a language table that breaks the
	// lexicon invariants (see Lexicon.Validate).
	ErrInvalidLexicon = errors.New("numwords: invalid lexicon")

	// ErrInvalidCurrencyTable indicates malformed currency configuration.
	ErrInvalidCurrencyTable = errors.New("numwords: invalid currency table")
)

// CurrencyError reports a currency code that the active language cannot
// name. It matches ErrUnsupportedCurrency under errors.Is.
type CurrencyError struct {
	Code     string
	Language string
}

func (e *CurrencyError) Error() string {
	return "numwords: currency \"" + e.Code + "\" is not available for \"" + e.Language + "\" language"
}

// Is reports whether target is ErrUnsupportedCurrency.
func (e *CurrencyError) Is(target error) bool {
	return target == ErrUnsupportedCurrency
}

// ScaleError reports a group exponent that the language cannot inflect.
// It matches both ErrUnsupportedScaleExponent and ErrUnsupportedMagnitude
// under errors.Is.
type ScaleError struct {
	Exponent int
	Language string
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("numwords: %s has no scale word for 10^%d", e.Language, e.Exponent)
}

// Is reports whether target is one of the scale sentinels.
func (e *ScaleError) Is(target error) bool {
	return target == ErrUnsupportedScaleExponent || target == ErrUnsupportedMagnitude
}
