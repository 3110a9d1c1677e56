// Unexported conversion functions shared by every language.
package numwords

import (
	"strconv"
	"strings"

	"github.com/bobg/errors"

	"github.com/az-ai-labs/numwords/internal/triplet"
)

const growConvert = 96 // estimated bytes for a full cardinal conversion

// splitSign separates an optional leading sign from a digit string.
func splitSign(s string) (negative bool, digits string) {
	if s != "" {
		switch s[0] {
		case '-':
			return true, s[1:]
		case '+':
			return false, s[1:]
		}
	}
	return false, s
}

// spell renders the magnitude digits, prefixed with the minus word when
// negative is set and the magnitude is not zero.
func spell(lang Language, negative bool, digits string, mode Mode) (string, error) {
	lex := lang.Lexicon()

	groups, err := triplet.Split(digits, lex.Scales.Exponents())
	switch {
	case errors.Is(err, triplet.ErrTooWide):
		return "", errors.Wrapf(ErrUnsupportedMagnitude, "%s names at most %d digits", lang.Name(), lex.MaxDigits())
	case err != nil:
		return "", errors.Wrapf(ErrInvalidNumber, "digit string %q", digits)
	}

	if len(groups) == 1 && groups[0].IsZero() {
		return lex.Zero, nil
	}

	sep := lex.Separators
	grouped := sep.GroupThreshold <= 0 || exceeds(digits, sep.GroupThreshold)

	var b strings.Builder
	b.Grow(growConvert)

	if negative {
		b.WriteString(lex.Minus)
		b.WriteString(sep.Sign)
	}

	first := true
	prevCompound := false
	for _, g := range groups {
		if g.IsZero() {
			continue
		}

		words, ok := renderGroup(lang, g.Value, g.Exponent, mode)
		if !ok {
			return "", &ScaleError{Exponent: g.Exponent, Language: lang.Name()}
		}

		if !first {
			if prevCompound || !grouped {
				b.WriteString(sep.Word)
			} else {
				b.WriteString(sep.Group)
			}
		}
		b.WriteString(words)

		first = false
		prevCompound = lex.Scales[g.Exponent].Compound
	}

	return b.String(), nil
}

// renderGroup writes one group followed by its inflected scale word.
// A zero group renders as "". It reports false when the exponent has no
// scale word.
func renderGroup(lang Language, value, exponent int, mode Mode) (string, bool) {
	if value == 0 {
		return "", true
	}

	lex := lang.Lexicon()
	words := strings.Join(lang.GroupWords(value, exponent, mode), lex.Separators.Word)
	if exponent == 0 {
		return words, true
	}

	scale, ok := lang.ScaleWord(value, exponent)
	if !ok {
		return "", false
	}

	sep := lex.Separators.Scale
	if lex.Scales[exponent].Compound {
		sep = lex.Separators.Word
	}
	return words + sep + scale, true
}

// exceeds reports whether the digit string is greater than limit.
// digits must be ASCII digits.
func exceeds(digits string, limit int64) bool {
	digits = strings.TrimLeft(digits, "0")
	l := strconv.FormatInt(limit, 10)
	if len(digits) != len(l) {
		return len(digits) > len(l)
	}
	return digits > l
}
