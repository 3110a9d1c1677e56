// Package triplet splits a decimal digit string into magnitude groups.
//
// A group is a run of at most three digits paired with the power of ten
// of its least-significant digit. Groups are cut only at the exponents a
// scale table defines, so the split works on digit strings of any length
// without converting them to machine integers.
package triplet

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bobg/errors"
)

// maxWidth is the widest segment a single group may hold (0–999).
const maxWidth = 3

var (
	// ErrInvalidDigits is returned for empty input or input containing
	// anything other than ASCII digits.
	ErrInvalidDigits = errors.New("triplet: invalid digit string")

	// ErrTooWide is returned when a segment between two defined
	// exponents, or above the highest one, is wider than three digits.
	ErrTooWide = errors.New("triplet: group wider than three digits")
)

// Group is one renderable chunk of a number.
type Group struct {
	Value    int // 0–999
	Exponent int // power of ten of the least-significant digit
}

// IsZero reports whether the group renders to nothing.
func (g Group) IsZero() bool {
	return g.Value == 0
}

// Split cuts digits into groups, most-significant first.
//
// exponents lists the powers of ten at which a cut is allowed; order and
// duplicates do not matter and 0 is always implied. Leading zeros are
// ignored; an all-zero input yields a single zero group with exponent 0.
// Zero groups inside the number are kept so callers see every position.
func Split(digits string, exponents []int) ([]Group, error) {
	if !allDigits(digits) {
		return nil, ErrInvalidDigits
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return []Group{{}}, nil
	}

	n := len(digits)
	cuts := cutPoints(exponents, n)

	groups := make([]Group, 0, len(cuts))
	top := n // exponent just above the current segment
	for _, exp := range cuts {
		if top-exp > maxWidth {
			return nil, ErrTooWide
		}
		seg := digits[n-top : n-exp]
		v, err := strconv.Atoi(seg)
		if err != nil {
			return nil, ErrInvalidDigits
		}
		groups = append(groups, Group{Value: v, Exponent: exp})
		top = exp
	}

	return groups, nil
}

// cutPoints returns the usable exponents below width, highest first,
// always ending with 0.
func cutPoints(exponents []int, width int) []int {
	cuts := make([]int, 0, len(exponents)+1)
	for _, e := range exponents {
		if e > 0 && e < width {
			cuts = append(cuts, e)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)
	slices.Reverse(cuts)
	return append(cuts, 0)
}

// allDigits reports whether s is non-empty and consists of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
