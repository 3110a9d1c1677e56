// Package locale selects a bundled language by BCP 47 tag or English name.
package locale

import (
	"strings"

	"github.com/bobg/errors"
	"golang.org/x/text/language"

	"github.com/az-ai-labs/numwords/lang/de"
	"github.com/az-ai-labs/numwords/lang/hu"
	"github.com/az-ai-labs/numwords/numwords"
)

// ErrUnknownLanguage is returned when no bundled language matches.
var ErrUnknownLanguage = errors.New("locale: unknown language")

var supported = []numwords.Language{
	hu.Language(),
	de.Language(),
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(supported))
	for i, l := range supported {
		out[i] = l.Tag()
	}
	return out
}

// Supported returns the bundled languages in a fixed order.
func Supported() []numwords.Language {
	out := make([]numwords.Language, len(supported))
	copy(out, supported)
	return out
}

// Lookup returns the bundled language for s, which may be a BCP 47 tag
// ("hu", "de-AT") or an English language name ("German"). Regional
// variants resolve to their base language.
func Lookup(s string) (numwords.Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range supported {
		if strings.EqualFold(l.Name(), s) {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownLanguage, "%q", s)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, errors.Wrapf(ErrUnknownLanguage, "%q", s)
	}
	return supported[idx], nil
}
